// Package main is the entry point for the one-shot SQLite to PostgreSQL
// migration tool. It copies every blacklist table from a local SQLite file
// into the PostgreSQL database the API serves from.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scamguard/blacklist-api/internal/config"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found or couldn't be loaded")
	}

	var (
		configPath string
		sqlitePath string
	)

	flag.StringVar(&configPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.StringVar(&sqlitePath, "sqlite", "./blacklist.db", "Path to the source SQLite database")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if !cfg.Database.IsConfigured() {
		log.Fatal().Msg("No database configured: set DATABASE_URL or the DB_* variables")
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	ctx := context.Background()

	// The migration needs a reachable target, unlike the API server
	if err := pool.HealthCheck(ctx); err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL is not reachable")
	}

	migrator := migrate.NewMigrator(sqlitePath, pool)
	results, err := migrator.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	var total int64
	for _, result := range results {
		total += result.Rows
	}

	log.Info().
		Int("tables", len(results)).
		Int64("rows_copied", total).
		Msg("Migration complete")
}
