// main.go
package main

import (
	"log"

	"hotel-storefront/cmd"
	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/internal/wire"
	"hotel-storefront/pkg/utils"

	"github.com/redis/go-redis/v9"
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
		zap.String("upstream", config.Upstream.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to redis for the durable client-state slot
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer rdb.Close()

	// Upstream API client; each request forwards the caller's own
	// identity-provider token
	upstream := remote.NewClient(
		config.Upstream.BaseURL,
		config.Upstream.Timeout,
		remote.ContextTokenProvider{},
		logger,
	)

	// Initialize repositories
	repos := repository.NewRepository(rdb, config.Checkout.ResultTTL, logger)

	// Wire all dependencies
	app := wire.Wiring(upstream, repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
