// Package migrate implements the one-shot SQLite to PostgreSQL data
// migration. It copies every blacklist table from a local SQLite file into
// the configured PostgreSQL database, skipping rows that already exist.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/migrations"
)

// Tables lists every table copied by the migration, in copy order.
var Tables = []string{
	constants.TableBlacklistedUsers,
	constants.TableBlacklistedGroups,
	constants.TableKeywordsSpecific,
	constants.TableKeywordsNonspecific,
	constants.TableRealmsBlacklist,
	constants.TableCommandBlacklist,
}

// TableResult reports the outcome of copying one table.
type TableResult struct {
	Table string
	Rows  int64
}

// Migrator copies blacklist data from a SQLite file into PostgreSQL.
type Migrator struct {
	sqlitePath string
	pg         *database.Pool
}

// NewMigrator creates a Migrator reading from the SQLite file at sqlitePath
// and writing into the given PostgreSQL pool.
func NewMigrator(sqlitePath string, pg *database.Pool) *Migrator {
	return &Migrator{
		sqlitePath: sqlitePath,
		pg:         pg,
	}
}

// Run performs the migration. It ensures the PostgreSQL schema exists, then
// copies every table. Rows whose key already exists in PostgreSQL are
// skipped, so the migration is safe to re-run. Column names and values are
// taken from the SQLite rows as-is.
func (m *Migrator) Run(ctx context.Context) ([]TableResult, error) {
	if _, err := os.Stat(m.sqlitePath); err != nil {
		return nil, fmt.Errorf("sqlite database not found at %s: %w", m.sqlitePath, err)
	}

	src, err := sql.Open("sqlite3", m.sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close sqlite database")
		}
	}()

	// Ensure the target schema exists before copying
	schemaMigrator := migrations.NewMigrator(m.pg)
	if err := schemaMigrator.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare target schema: %w", err)
	}

	results := make([]TableResult, 0, len(Tables))
	for _, table := range Tables {
		rows, err := m.copyTable(ctx, src, table)
		if err != nil {
			return results, fmt.Errorf("failed to migrate table %s: %w", table, err)
		}

		log.Info().
			Str("table", table).
			Int64("rows", rows).
			Msg("Table migrated")

		results = append(results, TableResult{Table: table, Rows: rows})
	}

	return results, nil
}

// copyTable copies all rows of one table inside a single transaction.
func (m *Migrator) copyTable(ctx context.Context, src *sql.DB, table string) (int64, error) {
	rows, err := src.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		// A missing source table means there is nothing to copy
		if strings.Contains(err.Error(), "no such table") {
			log.Warn().Str("table", table).Msg("Table not present in sqlite database, skipping")
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read source rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("failed to read source columns: %w", err)
	}

	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING",
		table,
		strings.Join(columns, ", "),
		placeholders(len(columns)),
	)

	var copied int64
	err = m.pg.Transaction(ctx, func(tx *sql.Tx) error {
		for rows.Next() {
			values := make([]interface{}, len(columns))
			dests := make([]interface{}, len(columns))
			for i := range values {
				dests[i] = &values[i]
			}

			if err := rows.Scan(dests...); err != nil {
				return fmt.Errorf("failed to scan source row: %w", err)
			}

			result, err := tx.ExecContext(ctx, insertQuery, values...)
			if err != nil {
				return fmt.Errorf("failed to insert row: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			copied += affected
		}

		return rows.Err()
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
