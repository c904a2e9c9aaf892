// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"conference-hall/cmd"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/wire"
	"conference-hall/pkg/cache"
	"conference-hall/pkg/database"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("auth_required", config.Auth.Required),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional lookup cache
	c, redisClient := cache.Connect(config.Redis, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	directory, err := repository.NewDemoEmployeeDirectory(logger)
	if err != nil {
		logger.Fatal("Failed to build employee directory", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(db, directory, c, config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
