package main

import (
	"ink-press/internal/app"
	"ink-press/pkg/cache"
	"ink-press/pkg/config"
	"ink-press/pkg/database"
	"ink-press/pkg/logger"
)

// @title           Ink Press API
// @version         1.0
// @description     Blogging backend managing categories and posts

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
