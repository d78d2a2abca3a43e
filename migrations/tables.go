package migrations

import (
	"context"
	"database/sql"

	"github.com/scamguard/blacklist-api/internal/constants"
)

// createBlacklistedUsersTable creates the blacklisted_users table
func createBlacklistedUsersTable() Migration {
	return Migration{
		Name:        "create_blacklisted_users_table",
		Description: "Creates the blacklisted_users table",
		TableName:   constants.TableBlacklistedUsers,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS blacklisted_users (
					user_id BIGINT PRIMARY KEY,
					username TEXT NOT NULL,
					reason TEXT,
					added_by TEXT,
					date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createBlacklistedGroupsTable creates the blacklisted_groups table
func createBlacklistedGroupsTable() Migration {
	return Migration{
		Name:        "create_blacklisted_groups_table",
		Description: "Creates the blacklisted_groups table",
		TableName:   constants.TableBlacklistedGroups,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS blacklisted_groups (
					group_id BIGINT PRIMARY KEY,
					reason TEXT,
					added_by TEXT,
					date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createKeywordsSpecificTable creates the flagged_keywords_specific table
func createKeywordsSpecificTable() Migration {
	return Migration{
		Name:        "create_flagged_keywords_specific_table",
		Description: "Creates the flagged_keywords_specific table",
		TableName:   constants.TableKeywordsSpecific,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS flagged_keywords_specific (
					id SERIAL PRIMARY KEY,
					keyword TEXT UNIQUE NOT NULL
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createKeywordsNonspecificTable creates the flagged_keywords_nonspecific table
func createKeywordsNonspecificTable() Migration {
	return Migration{
		Name:        "create_flagged_keywords_nonspecific_table",
		Description: "Creates the flagged_keywords_nonspecific table",
		TableName:   constants.TableKeywordsNonspecific,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS flagged_keywords_nonspecific (
					id SERIAL PRIMARY KEY,
					keyword TEXT UNIQUE NOT NULL
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createRealmsBlacklistTable creates the realms_blacklist table
func createRealmsBlacklistTable() Migration {
	return Migration{
		Name:        "create_realms_blacklist_table",
		Description: "Creates the realms_blacklist table",
		TableName:   constants.TableRealmsBlacklist,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS realms_blacklist (
					user_id BIGINT PRIMARY KEY,
					username TEXT NOT NULL,
					reason TEXT,
					date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createCommandBlacklistTable creates the command_blacklist table
func createCommandBlacklistTable() Migration {
	return Migration{
		Name:        "create_command_blacklist_table",
		Description: "Creates the command_blacklist table",
		TableName:   constants.TableCommandBlacklist,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS command_blacklist (
					user_id BIGINT PRIMARY KEY,
					username TEXT NOT NULL,
					reason TEXT,
					date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// GetMigrations returns all migrations in execution order.
func GetMigrations() []Migration {
	return []Migration{
		createBlacklistedUsersTable(),
		createBlacklistedGroupsTable(),
		createKeywordsSpecificTable(),
		createKeywordsNonspecificTable(),
		createRealmsBlacklistTable(),
		createCommandBlacklistTable(),
	}
}
