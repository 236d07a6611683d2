package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nntour/internal/config"
	"github.com/katalvlaran/nntour/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP JSON API",
		Long: `Serves GET /tour?cities=&seed=&start= with the full report as JSON,
GET /healthz and Prometheus metrics on GET /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              a.cfg.Listen,
				Handler:           server.NewHandler(a.cfg, a.log, prometheus.NewRegistry()),
				ReadHeaderTimeout: 5 * time.Second,
			}

			serverErrors := make(chan error, 1)
			go func() {
				a.log.Info("starting server", "addr", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				a.log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.log.Error("graceful shutdown failed", "error", err)
					return srv.Close()
				}
				a.log.Info("server stopped")
				return nil
			}
		},
	}
	cmd.Flags().String("listen", config.Default().Listen, "listen address")

	return cmd
}
