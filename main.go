package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"cartly.io/api/config"
	"cartly.io/api/services"
	"cartly.io/api/store"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}

	ctx := context.Background()
	client, db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to init mongo client")
	}
	defer client.Disconnect(ctx)

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("unable to ensure indexes")
	}

	listService := services.NewListService(services.ListServiceOptions{DB: db})
	userService := services.NewUserService(services.UserServiceOptions{DB: db})

	r := newRouter(listService, userService, cfg.APIKeys)

	log.Info().Str("addr", cfg.Addr).Msg("Server started")

	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
