package main

import (
	"crew/config"
	"crew/di"
	"crew/helper"
	"crew/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
