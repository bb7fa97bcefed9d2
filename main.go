// main.go
package main

import (
	"context"
	"log"

	"business-directory/cmd"
	"business-directory/internal/data/repository"
	"business-directory/internal/wire"
	"business-directory/pkg/database"
	"business-directory/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Apply schema migrations before serving traffic
	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, config.Database, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, config, logger)
	defer app.Close()

	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
