package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func run() error {
	app, cleanup, err := initialize(context.Background())
	if err != nil {
		return errors.Wrap(err, "failed to configure server")
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         app.config.Addr(),
		Handler:      withLogging(accessLogger(app.config.LogLevel), app.handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	failed := make(chan error, 1)
	go func() {
		app.log.Info().Str("addr", srv.Addr).Str("store", string(app.config.Store)).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return errors.Wrap(err, "server failed")
	case <-done:
	}

	app.log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
