package main

import (
	"streamhub/internal/app"
	"streamhub/pkg/cache"
	"streamhub/pkg/config"
	"streamhub/pkg/database"
	"streamhub/pkg/logger"
	"streamhub/pkg/queue"
	"streamhub/pkg/s3"
)

// @title           Streamhub API
// @version         1.0
// @description     Catalog and membership backend for a video-streaming service

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		// Account events are best effort; the API works without the broker
		log.Warn("Failed to connect to RabbitMQ, account events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
