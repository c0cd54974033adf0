package main

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

type requestIDs struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newRequestIDs() *requestIDs {
	return &requestIDs{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (g *requestIDs) next(t time.Time) string {
	g.lk.Lock()
	defer g.lk.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func accessLogger(level zerolog.Level) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level.String())
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

func withLogging(logger *log.Logger, h http.Handler) http.Handler {
	ids := newRequestIDs()

	logFn := func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = ids.next(start)
		}
		rw.Header().Set(requestIDHeader, id)

		uri := r.RequestURI
		method := r.Method
		rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
		h.ServeHTTP(rec, r)

		duration := time.Since(start)

		logger.WithFields(log.Fields{
			"uri":        uri,
			"method":     method,
			"status":     rec.status,
			"duration":   duration,
			"request_id": id,
		}).Info("request")
	}
	return http.HandlerFunc(logFn)
}
