package main

import (
	"log"

	"ecommerce-auth/cmd"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/wire"
	"ecommerce-auth/pkg/database"
	"ecommerce-auth/pkg/notify"
	"ecommerce-auth/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Optional session cache
	if config.Redis.Enabled() {
		rdb, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		repos.UseSessionCache(rdb, logger)
		logger.Info("Session cache enabled", zap.String("addr", config.Redis.Addr))
	}

	sms := notify.NewSMSSender(config.SMS, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, sms, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
