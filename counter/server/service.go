package main

import (
	"context"
	"net/http"
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter/connectors/wehttp"
	"github.com/weegigs/wee-counter/counter"
	"github.com/weegigs/wee-counter/stores/file"
	"github.com/weegigs/wee-counter/stores/memory"
	"github.com/weegigs/wee-counter/support"
	"github.com/weegigs/wee-counter/we"
)

type application struct {
	config  support.Config
	log     *zerolog.Logger
	tracer  *trace.TracerProvider
	handler http.Handler
}

func newLogger(cfg support.Config) *zerolog.Logger {
	logger := zerolog.New(os.Stdout).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("service", support.ServiceName).
		Logger()

	return &logger
}

func tracing(ctx context.Context, cfg support.Config) (*trace.TracerProvider, func(), error) {
	return we.NewTracerProvider(ctx, cfg.Tracing)
}

func newStore(ctx context.Context, cfg support.Config, log *zerolog.Logger) (counter.Store, error) {
	if cfg.Store == support.MemoryStore {
		log.Warn().Msg("using in-memory store, the count will not survive a restart")
		return memory.NewStore(), nil
	}

	store, err := file.Open(ctx, file.Path(cfg.DataFile), file.Logger(log))
	if err != nil {
		return nil, err
	}

	return store, nil
}

func newHandler(service counter.Service, log *zerolog.Logger) http.Handler {
	return wehttp.NewHandler(service, wehttp.Logger(log))
}

var Server = wire.NewSet(
	support.LoadConfig,
	newLogger,
	tracing,
	newStore,
	counter.NewService,
	wire.Bind(new(counter.Service), new(*counter.CounterService)),
	newHandler,
	wire.Struct(new(application), "*"),
)
