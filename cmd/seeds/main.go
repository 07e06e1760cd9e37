package main

import (
	"context"

	"github.com/DTCoding01/be-nc-news/cmd"
	"github.com/DTCoding01/be-nc-news/seed"
	"github.com/DTCoding01/be-nc-news/sqlstore"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := cmd.DefaultConfig()
	err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read configuration")
	}
	logger := cmd.SetupLogger(cfg)
	logger.Info().Str("driver", cfg.DatabaseDriver).Msg("Seeding database")

	// setup database
	store := sqlstore.New(cfg.DatabaseDriver, cfg.DSN())
	err = store.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("Can't connect to database")
	}
	defer store.Close()

	ctx := context.Background()

	// start from a blank slate so ids are predictable
	err = store.Reset(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Can't reset schema")
	}

	err = seed.Run(ctx, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("Can't insert fixtures")
	}

	logger.Info().Int("articles", seed.ArticleCount).Int("comments", seed.CommentCount).Msg("Database seeded")
}
