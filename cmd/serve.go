package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/reroreo1/portfolio/internal/config"
	"github.com/reroreo1/portfolio/internal/logger"
	"github.com/reroreo1/portfolio/internal/telemetry"
	"github.com/reroreo1/portfolio/internal/visits"
	"github.com/reroreo1/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Starts the HTTP server on $PORT (default 8080).

Visit statistics are recorded only when PORTFOLIO_STATS_DB is set. Traces are
exported when PORTFOLIO_OTEL_ENDPOINT is set.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	if debugMode {
		logger.SetDebug(true)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel, "portfolio")
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", "err", err)
		}
	}()

	var store *visits.Store
	if cfg.StatsEnabled() {
		store, err = visits.Open(ctx, cfg.Stats.DBPath, cfg.Stats.Retention)
		if err != nil {
			return err
		}
		defer store.Close()
		logger.Info("visit statistics enabled", "db", cfg.Stats.DBPath, "retention", cfg.Stats.Retention)
	}

	srv, err := web.New(web.Options{Store: store, Admin: cfg.Admin, Debug: cfg.Debug() || debugMode})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	srv.Wait()
	return nil
}
