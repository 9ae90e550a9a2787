package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokereview/database"
	"pokereview/internal/config"
	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	appLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.Connect(cfg, appLog)
	if err != nil {
		appLog.Fatal("database connection failed", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLog.Error("failed to close database", "error", err)
		}
	}()

	router := server.Wire(cfg, appLog, db)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLog.Info("starting api server", "env", cfg.GoEnv, "port", cfg.HTTPPort)
	if err := server.Run(ctx, router, cfg.HTTPPort, appLog); err != nil {
		appLog.Error("server error", "error", err)
		return
	}
	appLog.Info("server stopped gracefully")
}
