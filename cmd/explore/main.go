package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/weekend-explore/explore/db"
	"github.com/weekend-explore/explore/internal/auth"
	"github.com/weekend-explore/explore/internal/config"
	"github.com/weekend-explore/explore/internal/handlers"
	"github.com/weekend-explore/explore/internal/router"
	"github.com/weekend-explore/explore/internal/seed"
	"github.com/weekend-explore/explore/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A missing .env is fine; config falls back to the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}

	if cfg.SeedDemoData {
		if err := seed.Run(conn); err != nil {
			log.Fatal().Err(err).Msg("seeding demo data")
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, auth.TokenTTL)
	users := store.NewUserStore(conn)
	trips := store.NewTripStore(conn)

	r := router.NewRouter(handlers.NewAuthHandler(users, tokens), handlers.NewTripHandler(trips), tokens)

	log.Info().Str("addr", cfg.HTTPAddress()).Msg("starting server")

	if err := r.Run(cfg.HTTPAddress()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
