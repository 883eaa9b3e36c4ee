package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetops/preflight/internal/api/handlers"
	"github.com/fleetops/preflight/internal/api/router"
	"github.com/fleetops/preflight/internal/config"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/validator"
	"github.com/fleetops/preflight/internal/repository/postgres"
	"github.com/fleetops/preflight/internal/services"
	"github.com/fleetops/preflight/internal/worker"
	"github.com/fleetops/preflight/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Repositories
	alertRepo := postgres.NewAlertRepository(db)
	inspectionRepo := postgres.NewInspectionRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	driverRepo := postgres.NewDriverRepository(db)

	// Engine
	evaluator := checklist.NewEvaluator()
	classifier := checklist.NewClassifier()
	inspectionGen := engine.NewInspectionAlertGenerator(classifier)
	expirationGen := engine.NewExpirationAlertGenerator()

	// Services
	alertService := services.NewAlertService(alertRepo, log)
	inspectionService := services.NewInspectionService(
		inspectionRepo, vehicleRepo, alertService, evaluator, inspectionGen, log,
	)
	vehicleService := services.NewVehicleService(vehicleRepo, alertRepo, alertService, expirationGen, log)
	driverService := services.NewDriverService(driverRepo, alertRepo, alertService, expirationGen, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db, log),
		Inspection: handlers.NewInspectionHandler(inspectionService, log, val),
		Alert:      handlers.NewAlertHandler(alertService, log, val),
		Vehicle:    handlers.NewVehicleHandler(vehicleService, log, val),
		Driver:     handlers.NewDriverHandler(driverService, log, val),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background document expiry scanner
	var scanner *worker.ExpiryScanner
	if cfg.Scanner.Enabled {
		scanner = worker.NewExpiryScanner(vehicleService, driverService, alertRepo, cfg.Scanner.Schedule, log)
		if err := scanner.Start(ctx); err != nil {
			log.Fatalf("Failed to start expiry scanner: %v", err)
		}
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	cancel()

	if scanner != nil {
		scanner.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
