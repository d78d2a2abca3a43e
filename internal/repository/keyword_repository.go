package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// KeywordRepository defines methods for managing flagged keywords. Every
// method takes the tier whose table it should operate on.
type KeywordRepository interface {
	// Create adds a new keyword to the given tier.
	//
	// Parameters:
	//   - ctx: Context for transaction and cancellation
	//   - tier: The keyword tier to add to
	//   - keyword: The keyword text
	//
	// Returns:
	//   - The created keyword with ID populated
	//   - Error if the operation fails
	Create(ctx context.Context, tier models.KeywordTier, keyword string) (*models.FlaggedKeyword, error)

	// GetAll retrieves all keywords of the given tier in alphabetical order.
	//
	// Parameters:
	//   - ctx: Context for transaction and cancellation
	//   - tier: The keyword tier to list
	//
	// Returns:
	//   - A slice of all keywords in the tier
	//   - Error if the operation fails
	GetAll(ctx context.Context, tier models.KeywordTier) ([]*models.FlaggedKeyword, error)

	// Delete removes a keyword from the given tier by its text.
	//
	// Parameters:
	//   - ctx: Context for transaction and cancellation
	//   - tier: The keyword tier to remove from
	//   - keyword: The keyword text
	//
	// Returns:
	//   - Error if the operation fails
	Delete(ctx context.Context, tier models.KeywordTier, keyword string) error

	// Count returns the number of keywords in the given tier.
	//
	// Parameters:
	//   - ctx: Context for transaction and cancellation
	//   - tier: The keyword tier to count
	//
	// Returns:
	//   - The number of keywords in the tier
	//   - Error if the operation fails
	Count(ctx context.Context, tier models.KeywordTier) (int64, error)
}

// PostgresKeywordRepository is an implementation of KeywordRepository for PostgreSQL.
type PostgresKeywordRepository struct {
	db *database.Pool
}

// NewKeywordRepository creates a new KeywordRepository for PostgreSQL.
func NewKeywordRepository(db *database.Pool) KeywordRepository {
	return &PostgresKeywordRepository{
		db: db,
	}
}

// Create adds a new keyword to the given tier.
func (r *PostgresKeywordRepository) Create(ctx context.Context, tier models.KeywordTier, keyword string) (*models.FlaggedKeyword, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
		tier.Table(),
		constants.ColumnKeyword,
		constants.ColumnKeywordID,
	)

	startTime := time.Now()
	kw := &models.FlaggedKeyword{Keyword: keyword}
	err := r.db.QueryRowContext(ctx, query, keyword).Scan(&kw.ID)

	utils.LogDBQuery(query, []interface{}{keyword}, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to create %s keyword: %w", tier, err)
	}

	return kw, nil
}

// GetAll retrieves all keywords of the given tier in alphabetical order.
func (r *PostgresKeywordRepository) GetAll(ctx context.Context, tier models.KeywordTier) ([]*models.FlaggedKeyword, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY %s",
		constants.ColumnKeywordID,
		constants.ColumnKeyword,
		tier.Table(),
		constants.ColumnKeyword,
	)

	startTime := time.Now()
	rows, err := r.db.QueryContext(ctx, query)

	utils.LogDBQuery(query, nil, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query %s keywords: %w", tier, err)
	}
	defer rows.Close()

	keywords := make([]*models.FlaggedKeyword, 0)
	for rows.Next() {
		kw := &models.FlaggedKeyword{}
		if err := rows.Scan(&kw.ID, &kw.Keyword); err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		keywords = append(keywords, kw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keyword rows: %w", err)
	}

	return keywords, nil
}

// Delete removes a keyword from the given tier by its text.
func (r *PostgresKeywordRepository) Delete(ctx context.Context, tier models.KeywordTier, keyword string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		tier.Table(),
		constants.ColumnKeyword,
	)

	startTime := time.Now()
	result, err := r.db.ExecContext(ctx, query, keyword)

	utils.LogDBQuery(query, []interface{}{keyword}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete %s keyword: %w", tier, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Keyword", keyword)
	}

	return nil
}

// Count returns the number of keywords in the given tier.
func (r *PostgresKeywordRepository) Count(ctx context.Context, tier models.KeywordTier) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", tier.Table())

	startTime := time.Now()
	var count int64
	err := r.db.QueryRowContext(ctx, query).Scan(&count)

	utils.LogDBQuery(query, nil, time.Since(startTime), err)

	if err != nil {
		return 0, fmt.Errorf("failed to count %s keywords: %w", tier, err)
	}

	return count, nil
}
