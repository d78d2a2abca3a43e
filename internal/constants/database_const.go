// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names and column names. These constants ensure consistent
// database access patterns throughout the application, reducing the risk of
// SQL errors and simplifying database schema changes.
package constants

// Table Names define the names of database tables used in the application.
// Using these constants instead of string literals ensures consistency
// and makes database schema changes easier to implement.
const (
	// TableBlacklistedUsers is the table storing globally blacklisted users.
	TableBlacklistedUsers = "blacklisted_users"

	// TableBlacklistedGroups is the table storing blacklisted groups.
	TableBlacklistedGroups = "blacklisted_groups"

	// TableRealmsBlacklist is the table storing users banned from realms.
	TableRealmsBlacklist = "realms_blacklist"

	// TableCommandBlacklist is the table storing users banned from bot commands.
	TableCommandBlacklist = "command_blacklist"

	// TableKeywordsSpecific is the table storing specific-tier flagged keywords.
	TableKeywordsSpecific = "flagged_keywords_specific"

	// TableKeywordsNonspecific is the table storing nonspecific-tier flagged keywords.
	TableKeywordsNonspecific = "flagged_keywords_nonspecific"
)

// Common Column Names define frequently used database column names.
// These constants ensure consistent column name usage in SQL queries.
const (
	// ColumnUserID is the primary key column for user-keyed blacklist tables.
	ColumnUserID = "user_id"

	// ColumnGroupID is the primary key column for the group blacklist table.
	ColumnGroupID = "group_id"

	// ColumnUsername is the column storing the recorded username.
	ColumnUsername = "username"

	// ColumnReason is the column storing the moderation reason.
	ColumnReason = "reason"

	// ColumnAddedBy is the column recording which moderator added the entry.
	ColumnAddedBy = "added_by"

	// ColumnDateAdded is the server-assigned creation timestamp column.
	ColumnDateAdded = "date_added"

	// ColumnKeywordID is the synthetic primary key column of the keyword tables.
	ColumnKeywordID = "id"

	// ColumnKeyword is the unique keyword text column.
	ColumnKeyword = "keyword"
)

// PostgreSQL error codes used for error classification.
const (
	// PGErrorUniqueViolation is the PostgreSQL code for a unique constraint violation.
	PGErrorUniqueViolation = "23505"

	// PGErrorNotNullViolation is the PostgreSQL code for a not-null violation.
	PGErrorNotNullViolation = "23502"
)
