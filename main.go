// main.go
package main

import (
	"log"
	"time"

	"github.com/adityaraj161616/Nirmalaya/cmd"
	"github.com/adityaraj161616/Nirmalaya/internal/data/draft"
	"github.com/adityaraj161616/Nirmalaya/internal/data/repository"
	"github.com/adityaraj161616/Nirmalaya/internal/wire"
	"github.com/adityaraj161616/Nirmalaya/pkg/database"
	redisclient "github.com/adityaraj161616/Nirmalaya/pkg/redis"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
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
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Draft store: redis when configured, in-memory otherwise
	var drafts draft.Store
	if config.Redis.Addr != "" {
		rdb, err := redisclient.NewClient(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		drafts = draft.NewRedisStore(rdb, time.Duration(config.Booking.DraftTTLHours)*time.Hour, logger)
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	} else {
		logger.Warn("REDIS_ADDR not set, drafts will not survive a restart")
		drafts = draft.NewMemoryStore()
	}

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, drafts, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
