package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sailakshmimedida/Menu-Management/internal/billing"
	"github.com/sailakshmimedida/Menu-Management/internal/config"
	"github.com/sailakshmimedida/Menu-Management/internal/router"
	"github.com/sailakshmimedida/Menu-Management/internal/session"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Caller().Logger()

	cfg := config.Load()

	store := session.NewStore()
	r := router.New(store, billing.SystemClock{}, cfg.AllowedOrigins)

	log.Info().Str("port", cfg.Port).Msg("API running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
