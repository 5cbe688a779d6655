package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bizcardx/internal/api"
	"bizcardx/internal/api/handlers"
	"bizcardx/internal/repository"
	"bizcardx/internal/service"
	"bizcardx/pkg/config"
	"bizcardx/pkg/logger"
	"bizcardx/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting bizcardx service")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	cardRepo := repository.NewCardRepository(db, appLogger)
	ocrService := service.NewOCRService(&cfg.OCR, appLogger)

	maxUploadBytes := cfg.Upload.MaxSizeMB << 20
	cardService := service.NewCardService(cardRepo, ocrService, cfg.Upload.Dir, maxUploadBytes, appLogger)

	cardHandler := handlers.NewCardHandler(cardService, appLogger)

	app := api.SetupRouter(cardHandler, db, cfg.Upload.Dir, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
