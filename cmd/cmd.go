package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/DTCoding01/be-nc-news/sqlstore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel         string `json:"log_level"`
	LogFormat        string `json:"log_format"`
	DatabaseDriver   string `json:"database_driver"`
	DatabaseName     string `json:"database_name"`
	DatabaseUser     string `json:"database_user"`
	DatabaseHost     string `json:"database_host"`
	DatabasePassword string `json:"database_password"`
	// DatabaseDSN, when set, is used as is instead of being built from the
	// other database settings.
	DatabaseDSN     string `json:"database_dsn"`
	Addr            string `json:"addr"`
	BaseURL         string `json:"base_url"`
	SlackWebhookURL string `json:"slack_webhook_url"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "json",
		DatabaseDriver:   sqlstore.DriverPostgres,
		DatabaseName:     "nc_news",
		DatabaseUser:     "postgres",
		DatabasePassword: "postgres",
		DatabaseHost:     "127.0.0.1",
		Addr:             "localhost:9090",
	}
}

func (c *Config) Load() error {
	f, err := os.Open("config.json")
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if !os.IsNotExist(err) {
		defer f.Close()
		err = json.NewDecoder(f).Decode(c)
		if err != nil {
			return err
		}
	}

	for env, field := range map[string]*string{
		"LOG_LEVEL":         &c.LogLevel,
		"LOG_FORMAT":        &c.LogFormat,
		"DATABASE_DRIVER":   &c.DatabaseDriver,
		"DATABASE_NAME":     &c.DatabaseName,
		"DATABASE_USER":     &c.DatabaseUser,
		"DATABASE_HOST":     &c.DatabaseHost,
		"DATABASE_PASSWORD": &c.DatabasePassword,
		"DATABASE_DSN":      &c.DatabaseDSN,
		"ADDR":              &c.Addr,
		"BASE_URL":          &c.BaseURL,
		"SLACK_WEBHOOK_URL": &c.SlackWebhookURL,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}

	switch c.DatabaseDriver {
	case sqlstore.DriverPostgres, sqlstore.DriverPgx:
	case sqlstore.DriverSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("missing config 'database dsn', required by the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.DatabaseDriver)
	}

	return nil
}

// DSN returns the data source name of the configured database.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}

	return fmt.Sprintf(
		"user=%v dbname=%v sslmode=disable password=%v host=%v",
		c.DatabaseUser,
		c.DatabaseName,
		c.DatabasePassword,
		c.DatabaseHost,
	)
}

func SetupLogger(cfg *Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("input", cfg.LogLevel).Msg("Cannot parse log level")
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "" || cfg.LogFormat == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
}
