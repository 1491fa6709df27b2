// Command chrozone serves the interactions webhook
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"chrozone/internal/platform/config"
	"chrozone/internal/platform/logger"
	phttp "chrozone/internal/platform/net/http"
	"chrozone/internal/platform/net/http/bind"

	"chrozone/internal/services/api"
	interactionsmod "chrozone/internal/services/interactions/module"
)

func main() {
	root := config.New()

	// bring up logging and validation early
	l := logger.Get()
	bind.Init()

	settings, err := interactionsmod.Load(root)
	if err != nil {
		l.Panic().Err(err).Msg("invalid configuration")
	}

	// http server (reads CHROZONE_PORT)
	srv := phttp.NewServer(root)

	if err := api.Mount(srv.Router(), api.Options{
		Config:   root,
		Logger:   l,
		Settings: settings,
	}); err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		l.Info().Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	<-drained
}
