package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sprintpulse/internal/app"
	"sprintpulse/internal/config"
	"sprintpulse/internal/database"
	"sprintpulse/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configFilePath := os.Getenv("CONFIG_PATH")
	if configFilePath == "" {
		panic("env CONFIG_PATH is empty")
	}
	cfg, err := config.Load(configFilePath)
	if err != nil {
		panic("error on loading config: " + err.Error())
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	defer log.Sync()

	err = database.Migrate(cfg.App.MigrationDir, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("error on migrating database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	a := app.New(cfg, log)

	if err := a.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info("app stopped by context")
		} else {
			log.Error("app exited with error", zap.Error(err))
		}
	}
}
