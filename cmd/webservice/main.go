package main

import (
	"context"

	"github.com/andriekus/product-options-service/config"
	"github.com/andriekus/product-options-service/internal/app"
	"github.com/andriekus/product-options-service/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	if config.MongoDBConfig.URI == "" {
		log.Fatal().Msg("MONGO_URI must be defined")
	}
	if config.ServicePort == "" {
		log.Fatal().Msg("PORT must be defined")
	}
	if config.JWTSecret == "" {
		log.Fatal().Msg("JWT_KEY must be defined")
	}

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
