package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scamguard/blacklist-api/internal/config"
)

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		// Default to info level if invalid
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogDBQuery logs a database query with its duration and outcome.
// Queries are logged at debug level; failures at error level.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	if err != nil {
		log.Error().
			Str("query", compactQuery(query)).
			Interface("args", args).
			Dur("duration", duration).
			Err(err).
			Msg("Database query failed")
		return
	}

	log.Debug().
		Str("query", compactQuery(query)).
		Interface("args", args).
		Dur("duration", duration).
		Msg("Database query executed")
}

// compactQuery collapses whitespace in a SQL query for single-line logging.
func compactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
