// Package models defines the data structures persisted by the blacklist store
// and the request/response shapes exchanged with API clients.
package models

import (
	"time"

	"github.com/scamguard/blacklist-api/internal/constants"
)

// BlacklistedUser is a user on the global blacklist.
// UserID is the caller-supplied primary key and is immutable once created.
type BlacklistedUser struct {
	UserID   int64     `json:"user_id" db:"user_id" validate:"required"`
	Username string    `json:"username" db:"username" validate:"required,notblank"`
	Reason   string    `json:"reason" db:"reason" validate:"required,notblank"`
	AddedBy  string    `json:"added_by" db:"added_by" validate:"required,notblank"`
	AddedAt  time.Time `json:"added_at" db:"date_added"`
}

// TableName returns the database table name for the BlacklistedUser model.
func (u *BlacklistedUser) TableName() string {
	return constants.TableBlacklistedUsers
}

// BlacklistedGroup is a group on the blacklist. Groups carry no username.
type BlacklistedGroup struct {
	GroupID int64     `json:"group_id" db:"group_id" validate:"required"`
	Reason  string    `json:"reason" db:"reason" validate:"required,notblank"`
	AddedBy string    `json:"added_by" db:"added_by" validate:"required,notblank"`
	AddedAt time.Time `json:"added_at" db:"date_added"`
}

// TableName returns the database table name for the BlacklistedGroup model.
func (g *BlacklistedGroup) TableName() string {
	return constants.TableBlacklistedGroups
}

// BlacklistEntry is a user on one of the scoped blacklists (realms or
// commands). The two scopes share a schema; the table is chosen by the
// store the entry lives in. Scoped entries record no added_by.
type BlacklistEntry struct {
	UserID   int64     `json:"user_id" db:"user_id" validate:"required"`
	Username string    `json:"username" db:"username" validate:"required,notblank"`
	Reason   string    `json:"reason" db:"reason" validate:"required,notblank"`
	AddedAt  time.Time `json:"added_at" db:"date_added"`
}

// UserSearchResult groups the results of a username search across the three
// user-keyed blacklists. Each list is independent and may be empty; the group
// blacklist is excluded because groups have no username.
type UserSearchResult struct {
	BlacklistedUsers []*BlacklistedUser `json:"blacklisted_users"`
	RealmsBlacklist  []*BlacklistEntry  `json:"realms_blacklist"`
	CommandBlacklist []*BlacklistEntry  `json:"command_blacklist"`
}

// Stats reports the live row count of every blacklist table.
type Stats struct {
	BlacklistedUsers    int64 `json:"blacklisted_users"`
	BlacklistedGroups   int64 `json:"blacklisted_groups"`
	KeywordsSpecific    int64 `json:"flagged_keywords_specific"`
	KeywordsNonspecific int64 `json:"flagged_keywords_nonspecific"`
	RealmsBlacklist     int64 `json:"realms_blacklist"`
	CommandBlacklist    int64 `json:"command_blacklist"`
}
