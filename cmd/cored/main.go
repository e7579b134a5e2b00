// Command cored serves the core-progression simulator over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomtoy/coresim/internal/adapters/catalog"
	httpadapter "github.com/randomtoy/coresim/internal/adapters/http"
	"github.com/randomtoy/coresim/internal/adapters/rng"
	"github.com/randomtoy/coresim/internal/app"
	"github.com/randomtoy/coresim/internal/config"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	svc := app.NewSimulatorService(catalog.NewEmbeddedStore(), rng.NewSource(), logger, app.Options{
		CatalogID:     cfg.CatalogID,
		Workers:       cfg.Workers,
		MaxTrials:     cfg.MaxTrials,
		DefaultTrials: cfg.DefaultTrials,
	})
	srv := httpadapter.NewServer(svc, logger, cfg.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", cfg.HTTPAddr, "catalog", cfg.CatalogID, "workers", cfg.Workers)
		if err := srv.Start(cfg.HTTPAddr); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("draining", "grace", shutdownGrace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
