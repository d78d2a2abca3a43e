// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// Schema describes how one blacklist kind maps onto its table. The generic
// ListStore executes every query through a Schema, so adding a new kind means
// writing a descriptor, not another repository.
type Schema[T any] struct {
	// Kind is the resource name used in error messages, e.g. "BlacklistedUser".
	Kind string

	// Table is the backing table name.
	Table string

	// KeyColumn is the primary key column used by GetByKey and Delete.
	KeyColumn string

	// Columns lists the insert columns followed by the date_added column,
	// in the order Args and Dest produce values for them.
	Columns []string

	// SearchColumn is the column matched by SearchByUsername, or empty when
	// the kind has no username to search.
	SearchColumn string

	// Args returns insert arguments matching Columns minus the timestamp.
	Args func(record *T) []interface{}

	// Dest returns scan destinations matching Columns.
	Dest func(record *T) []interface{}
}

// Store defines the operations available on every blacklist kind.
type Store[T any] interface {
	// Create adds a new record and returns it with its timestamp populated.
	Create(ctx context.Context, record *T) (*T, error)

	// GetByKey retrieves a record by its primary key.
	GetByKey(ctx context.Context, key int64) (*T, error)

	// GetAll retrieves all records, newest first.
	GetAll(ctx context.Context) ([]*T, error)

	// Delete removes a record by its primary key.
	Delete(ctx context.Context, key int64) error

	// SearchByUsername retrieves records whose username contains the
	// fragment, case-insensitively.
	SearchByUsername(ctx context.Context, fragment string) ([]*T, error)

	// Count returns the number of records.
	Count(ctx context.Context) (int64, error)
}

// ListStore is a PostgreSQL implementation of Store driven by a Schema.
type ListStore[T any] struct {
	db     *database.Pool
	schema Schema[T]
}

// NewListStore creates a Store backed by PostgreSQL for the given schema.
func NewListStore[T any](db *database.Pool, schema Schema[T]) *ListStore[T] {
	return &ListStore[T]{
		db:     db,
		schema: schema,
	}
}

// insertColumns returns Columns without the trailing timestamp column.
func (s *ListStore[T]) insertColumns() []string {
	return s.schema.Columns[:len(s.schema.Columns)-1]
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// Create adds a new record and returns it with its timestamp populated.
func (s *ListStore[T]) Create(ctx context.Context, record *T) (*T, error) {
	cols := s.insertColumns()
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.schema.Table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
		constants.ColumnDateAdded,
	)

	startTime := time.Now()
	dests := s.schema.Dest(record)
	err := s.db.QueryRowContext(ctx, query, s.schema.Args(record)...).
		Scan(dests[len(dests)-1])

	utils.LogDBQuery(query, s.schema.Args(record), time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.schema.Kind, err)
	}

	return record, nil
}

// GetByKey retrieves a record by its primary key.
func (s *ListStore[T]) GetByKey(ctx context.Context, key int64) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		strings.Join(s.schema.Columns, ", "),
		s.schema.Table,
		s.schema.KeyColumn,
	)

	startTime := time.Now()
	record := new(T)
	err := s.db.QueryRowContext(ctx, query, key).Scan(s.schema.Dest(record)...)

	utils.LogDBQuery(query, []interface{}{key}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(s.schema.Kind, key)
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.schema.Kind, err)
	}

	return record, nil
}

// GetAll retrieves all records, newest first.
func (s *ListStore[T]) GetAll(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s DESC",
		strings.Join(s.schema.Columns, ", "),
		s.schema.Table,
		constants.ColumnDateAdded,
	)

	return s.queryList(ctx, query)
}

// Delete removes a record by its primary key.
func (s *ListStore[T]) Delete(ctx context.Context, key int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		s.schema.Table,
		s.schema.KeyColumn,
	)

	startTime := time.Now()
	result, err := s.db.ExecContext(ctx, query, key)

	utils.LogDBQuery(query, []interface{}{key}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.schema.Kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(s.schema.Kind, key)
	}

	return nil
}

// SearchByUsername retrieves records whose username contains the fragment,
// case-insensitively, newest first.
func (s *ListStore[T]) SearchByUsername(ctx context.Context, fragment string) ([]*T, error) {
	if s.schema.SearchColumn == "" {
		return nil, fmt.Errorf("%s records are not searchable by username", s.schema.Kind)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ILIKE $1 ORDER BY %s DESC",
		strings.Join(s.schema.Columns, ", "),
		s.schema.Table,
		s.schema.SearchColumn,
		constants.ColumnDateAdded,
	)

	return s.queryList(ctx, query, "%"+fragment+"%")
}

// Count returns the number of records.
func (s *ListStore[T]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.schema.Table)

	startTime := time.Now()
	var count int64
	err := s.db.QueryRowContext(ctx, query).Scan(&count)

	utils.LogDBQuery(query, nil, time.Since(startTime), err)

	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", s.schema.Kind, err)
	}

	return count, nil
}

func (s *ListStore[T]) queryList(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	startTime := time.Now()
	rows, err := s.db.QueryContext(ctx, query, args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query %s records: %w", s.schema.Kind, err)
	}
	defer rows.Close()

	records := make([]*T, 0)
	for rows.Next() {
		record := new(T)
		if err := rows.Scan(s.schema.Dest(record)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.schema.Kind, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", s.schema.Kind, err)
	}

	return records, nil
}
