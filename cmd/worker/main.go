package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/selfservice/fastfood-api/internal/app/api"
	platformobservability "github.com/selfservice/fastfood-api/internal/platform/observability"
	productactivities "github.com/selfservice/fastfood-api/internal/platform/temporal/activities/products"
	productworkflows "github.com/selfservice/fastfood-api/internal/platform/temporal/workflows/products"
)

func main() {
	ctx := context.Background()
	const serviceName = "fastfood-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.WithEnvironment(cfg.Environment))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanup, err := api.BuildServices(ctx, cfg, instruments)
	if err != nil {
		logger.Error("failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	productActivities := productactivities.NewActivities(services.ProductCore, services.ProductCore)

	temporalClient, err := api.DialTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, productworkflows.ProductCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(productworkflows.ProductCreationWorkflow, workflow.RegisterOptions{Name: productworkflows.ProductCreationWorkflowName})
	w.RegisterActivityWithOptions(productActivities.PersistProduct, activity.RegisterOptions{Name: productactivities.PersistProductActivityName})
	w.RegisterActivityWithOptions(productActivities.RegisterProductWithOrderService, activity.RegisterOptions{Name: productactivities.RegisterProductActivityName})

	logger.Info("worker listening", slog.String("taskQueue", productworkflows.ProductCreationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
