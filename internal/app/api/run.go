package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	productsworkflows "github.com/selfservice/fastfood-api/internal/domains/products/adapters/workflows"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	platformobservability "github.com/selfservice/fastfood-api/internal/platform/observability"
)

const (
	serviceName     = "fastfood-api"
	shutdownTimeout = 10 * time.Second
)

// Run boots the fast-food HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.WithEnvironment(cfg.Environment))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanup, err := BuildServices(ctx, cfg, instruments)
	if err != nil {
		return err
	}
	defer cleanup()

	var workflows productsports.WorkflowOrchestrator = productsworkflows.NewInlineProductWorkflows(services.Products)
	if temporalClient, err := DialTemporal(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline CreateProduct", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = productsworkflows.NewTemporalProductWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(serviceName, services, workflows),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("fast-food API listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", server.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down fast-food API")
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("fast-food API exited", slog.String("error", err.Error()))
		return err
	}
	return nil
}
