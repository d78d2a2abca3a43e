package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// setupDBMock creates a new mock database and pool for testing
func setupDBMock(t *testing.T) (*database.Pool, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")

	pool := &database.Pool{
		DB: db,
	}

	return pool, mock, func() {
		db.Close()
	}
}

func TestNewBlacklistedUserRepository(t *testing.T) {
	// Arrange
	pool, _, cleanup := setupDBMock(t)
	defer cleanup()

	// Act
	repo := NewBlacklistedUserRepository(pool)

	// Assert
	assert.NotNil(t, repo, "Repository should not be nil")
}

func TestListStoreCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()
		user := &models.BlacklistedUser{
			UserID:   123456789,
			Username: "scammer42",
			Reason:   "Phishing links",
			AddedBy:  "mod_alice",
		}

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO blacklisted_users \(user_id, username, reason, added_by\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING date_added`).
			WithArgs(user.UserID, user.Username, user.Reason, user.AddedBy).
			WillReturnRows(sqlmock.NewRows([]string{"date_added"}).AddRow(now))

		// Act
		result, err := repo.Create(ctx, user)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, user.UserID, result.UserID)
		assert.Equal(t, user.Username, result.Username)
		assert.Equal(t, now, result.AddedAt, "Timestamp should come from the database")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()
		user := &models.BlacklistedUser{
			UserID:   123456789,
			Username: "scammer42",
			Reason:   "Phishing links",
			AddedBy:  "mod_alice",
		}

		dbError := errors.New("database error")
		mock.ExpectQuery(`INSERT INTO blacklisted_users`).
			WithArgs(user.UserID, user.Username, user.Reason, user.AddedBy).
			WillReturnError(dbError)

		// Act
		result, err := repo.Create(ctx, user)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to create BlacklistedUser")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListStoreGetByKey(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()
		now := time.Now()

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users WHERE user_id = \$1`).
			WithArgs(int64(123456789)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "added_by", "date_added"}).
				AddRow(int64(123456789), "scammer42", "Phishing links", "mod_alice", now))

		// Act
		result, err := repo.GetByKey(ctx, 123456789)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(123456789), result.UserID)
		assert.Equal(t, "scammer42", result.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users WHERE user_id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "added_by", "date_added"}))

		// Act
		result, err := repo.GetByKey(ctx, 42)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, utils.IsNotFoundError(err), "Missing record should map to a not found error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListStoreGetAll(t *testing.T) {
	t.Run("Success With Results", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()
		now := time.Now()
		earlier := now.Add(-time.Hour)

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users ORDER BY date_added DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "added_by", "date_added"}).
				AddRow(int64(2), "newer", "spam", "mod_bob", now).
				AddRow(int64(1), "older", "spam", "mod_bob", earlier))

		// Act
		results, err := repo.GetAll(ctx)

		// Assert
		assert.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, int64(2), results[0].UserID, "Newest record should come first")
		assert.Equal(t, int64(1), results[1].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success Empty", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users ORDER BY date_added DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "added_by", "date_added"}))

		// Act
		results, err := repo.GetAll(ctx)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, results, "Empty result should be a slice, not nil")
		assert.Len(t, results, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users`).
			WillReturnError(errors.New("database error"))

		// Act
		results, err := repo.GetAll(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, results)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListStoreDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()

		mock.ExpectExec(`DELETE FROM blacklisted_users WHERE user_id = \$1`).
			WithArgs(int64(123456789)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.Delete(ctx, 123456789)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()

		mock.ExpectExec(`DELETE FROM blacklisted_users WHERE user_id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.Delete(ctx, 42)

		// Assert
		assert.Error(t, err)
		assert.True(t, utils.IsNotFoundError(err), "Deleting a missing record should be a not found error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListStoreSearchByUsername(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		ctx := context.Background()
		now := time.Now()

		mock.ExpectQuery(`SELECT user_id, username, reason, added_by, date_added FROM blacklisted_users WHERE username ILIKE \$1 ORDER BY date_added DESC`).
			WithArgs("%scam%").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "added_by", "date_added"}).
				AddRow(int64(1), "scammer42", "spam", "mod_bob", now))

		// Act
		results, err := repo.SearchByUsername(ctx, "scam")

		// Assert
		assert.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "scammer42", results[0].Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unsearchable Kind", func(t *testing.T) {
		// Arrange
		pool, _, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedGroupRepository(pool)

		// Act
		results, err := repo.SearchByUsername(context.Background(), "scam")

		// Assert
		assert.Error(t, err, "Groups carry no username and must not be searchable")
		assert.Nil(t, results)
	})
}

func TestListStoreCount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blacklisted_users`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

		// Act
		count, err := repo.Count(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		repo := NewBlacklistedUserRepository(pool)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blacklisted_users`).
			WillReturnError(errors.New("database error"))

		// Act
		count, err := repo.Count(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, int64(0), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntryStores(t *testing.T) {
	t.Run("Realms And Command Use Their Own Tables", func(t *testing.T) {
		// Arrange
		pool, mock, cleanup := setupDBMock(t)
		defer cleanup()
		realms := NewRealmsBlacklistRepository(pool)
		commands := NewCommandBlacklistRepository(pool)

		ctx := context.Background()
		now := time.Now()

		mock.ExpectQuery(`SELECT user_id, username, reason, date_added FROM realms_blacklist ORDER BY date_added DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "date_added"}).
				AddRow(int64(1), "griefer", "realm abuse", now))
		mock.ExpectQuery(`SELECT user_id, username, reason, date_added FROM command_blacklist ORDER BY date_added DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "reason", "date_added"}))

		// Act
		realmEntries, realmErr := realms.GetAll(ctx)
		commandEntries, commandErr := commands.GetAll(ctx)

		// Assert
		assert.NoError(t, realmErr)
		assert.NoError(t, commandErr)
		require.Len(t, realmEntries, 1)
		assert.Equal(t, "griefer", realmEntries[0].Username)
		assert.Len(t, commandEntries, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
