package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/api"
	"github.com/katalvlaran/degrees/internal/config"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve degree queries over HTTP",
		Long: `Serves the JSON API and Prometheus metrics. With --config the file is
watched and the database is reloaded when it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default \""+config.DefaultAddr+"\")")

	return cmd
}

// serve runs the HTTP server until ctx is done.
func (a *app) serve(ctx context.Context) error {
	db, err := a.open()
	if err != nil {
		return err
	}
	var current func() *config.Config
	if a.loader != nil {
		current = func() *config.Config { return a.resolve(a.loader.Config()) }
	}
	handler := api.New(db, current, a.log)

	if a.loader != nil {
		a.loader.OnChange(func(newCfg *config.Config) {
			cfg := a.resolve(newCfg)
			if err := handler.Apply(cfg); err != nil {
				a.log.Warn("hot-reload skipped", "err", err)
				return
			}
			a.log.Info("database hot-reloaded", "path", cfg.Database)
		})
		stopWatch, err := a.loader.Watch()
		if err != nil {
			a.log.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	srv := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  a.cfg.HTTP.ReadTimeout(),
		WriteTimeout: a.cfg.HTTP.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	a.log.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutCtx)
}
