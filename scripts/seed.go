// Package scripts provides utility scripts for database management.
//
// It currently implements idempotent database seeding: executed seeds are
// tracked in a dedicated table so each seed runs exactly once, making the
// process safe on both new and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
)

// defaultNonspecificKeywords is the starter keyword set for a fresh database.
// These are broad scam indicators; operators extend the list over the API.
var defaultNonspecificKeywords = []string{
	"free nitro",
	"free robux",
	"steam gift",
	"crypto giveaway",
	"double your money",
	"dm me to claim",
}

// Seeder handles database seeding.
type Seeder struct {
	db *database.Pool
}

// NewSeeder creates a new seeder.
func NewSeeder(db *database.Pool) *Seeder {
	return &Seeder{
		db: db,
	}
}

// SeedDatabase seeds the database with initial data. It creates the seeds
// tracking table if it doesn't exist, then runs every seed that hasn't been
// executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"default_nonspecific_keywords", s.seedNonspecificKeywords},
	}

	for _, seed := range seeds {
		if !executedSeeds[seed.Name] {
			log.Info().Str("seed", seed.Name).Msg("Running seed")
			if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
				return err
			}
		} else {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds tracking table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns a map of executed seed names.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction.
// If the seed fails, the transaction is rolled back.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		if _, err := tx.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// seedNonspecificKeywords inserts the starter nonspecific keywords. Keywords
// already present are left alone so operator edits survive reseeding.
func (s *Seeder) seedNonspecificKeywords(ctx context.Context, tx *sql.Tx) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (keyword) VALUES ($1) ON CONFLICT (keyword) DO NOTHING`,
		constants.TableKeywordsNonspecific,
	)

	insertedCount := 0
	for _, keyword := range defaultNonspecificKeywords {
		result, err := tx.ExecContext(ctx, query, keyword)
		if err != nil {
			return fmt.Errorf("failed to insert keyword %q: %w", keyword, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			insertedCount += int(n)
		}
	}

	log.Info().
		Int("inserted_keywords", insertedCount).
		Msg("Nonspecific keywords seeding completed")

	return nil
}
