package main

import (
	"context"
	"os"
	"time"

	"ruva/config"
	dbpkg "ruva/db"
	"ruva/router"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	router.SetLogMode(cfg.LogMode)

	ctx := context.Background()
	store, err := dbpkg.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error closing store")
		}
	}()

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	router.Initialize(r, store)

	log.Info().Str("port", cfg.Port).Msg("RUVA listening")
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
