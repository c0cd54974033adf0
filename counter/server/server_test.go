package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter/counter"
	"github.com/weegigs/wee-counter/stores/file"
	"github.com/weegigs/wee-counter/stores/memory"
	"github.com/weegigs/wee-counter/support"
)

func quiet() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestAccessLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := withLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("records the request", func(t *testing.T) {
		hook.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/increment", nil))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "/api/increment", entry.Data["uri"])
		assert.Equal(t, http.MethodPost, entry.Data["method"])
		assert.Equal(t, http.StatusTeapot, entry.Data["status"])
		assert.Len(t, rec.Header().Get(requestIDHeader), 26)
		assert.Equal(t, rec.Header().Get(requestIDHeader), entry.Data["request_id"])
	})

	t.Run("keeps a caller request id", func(t *testing.T) {
		hook.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "caller-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "caller-id", rec.Header().Get(requestIDHeader))
		assert.Equal(t, "caller-id", hook.LastEntry().Data["request_id"])
	})

	t.Run("issues distinct request ids", func(t *testing.T) {
		first := httptest.NewRecorder()
		second := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, first.Header().Get(requestIDHeader), second.Header().Get(requestIDHeader))
	})
}

func TestAccessLoggerLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, accessLogger(zerolog.DebugLevel).GetLevel())
	assert.Equal(t, log.WarnLevel, accessLogger(zerolog.WarnLevel).GetLevel())
	assert.Equal(t, log.InfoLevel, accessLogger(zerolog.Disabled).GetLevel())
}

func TestNewStore(t *testing.T) {
	t.Run("opens a file store", func(t *testing.T) {
		cfg := support.Config{Store: support.FileStore, DataFile: filepath.Join(t.TempDir(), "data.json")}

		store, err := newStore(context.Background(), cfg, quiet())
		require.NoError(t, err)
		assert.IsType(t, &file.Store{}, store)
		assert.FileExists(t, cfg.DataFile)
	})

	t.Run("opens a memory store", func(t *testing.T) {
		store, err := newStore(context.Background(), support.Config{Store: support.MemoryStore}, quiet())
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
	})
}

func TestServesCounter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := withLogging(logger, newHandler(counter.NewService(memory.NewStore()), quiet()))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/increment", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/count", nil))

	assert.JSONEq(t, `{"count": 3}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
