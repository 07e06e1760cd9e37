package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	ncnews "github.com/DTCoding01/be-nc-news"
	"github.com/DTCoding01/be-nc-news/cmd"
	"github.com/DTCoding01/be-nc-news/notify"
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

	// setup database
	store := sqlstore.New(cfg.DatabaseDriver, cfg.DSN())

	// fire the server
	s := ncnews.NewServer(&ncnews.ServerConfig{Addr: cfg.Addr, BaseURL: cfg.BaseURL}, logger, store)
	err = s.Prepare()
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot prepare server")
	}

	err = store.Migrate(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot create schema")
	}

	if cfg.SlackWebhookURL != "" {
		ll := logger.With().Str("component", "slack").Logger()
		s.Board().OnArticleCreated(notify.NewSlack(cfg.SlackWebhookURL, cfg.BaseURL, ll).ArticleCreated)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("Shutting down")
		s.Stop()
	}()

	err = s.Start()
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot start server")
	}
}
