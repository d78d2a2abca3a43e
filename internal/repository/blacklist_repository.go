package repository

import (
	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/models"
)

// BlacklistedUserStore manages records of globally blacklisted users.
type BlacklistedUserStore = Store[models.BlacklistedUser]

// BlacklistedGroupStore manages records of blacklisted groups.
type BlacklistedGroupStore = Store[models.BlacklistedGroup]

// BlacklistEntryStore manages the realm and command blacklists, which share a
// record shape and differ only in the backing table.
type BlacklistEntryStore = Store[models.BlacklistEntry]

// NewBlacklistedUserRepository creates the store for globally blacklisted users.
func NewBlacklistedUserRepository(db *database.Pool) BlacklistedUserStore {
	return NewListStore(db, Schema[models.BlacklistedUser]{
		Kind:      "BlacklistedUser",
		Table:     constants.TableBlacklistedUsers,
		KeyColumn: constants.ColumnUserID,
		Columns: []string{
			constants.ColumnUserID,
			constants.ColumnUsername,
			constants.ColumnReason,
			constants.ColumnAddedBy,
			constants.ColumnDateAdded,
		},
		SearchColumn: constants.ColumnUsername,
		Args: func(u *models.BlacklistedUser) []interface{} {
			return []interface{}{u.UserID, u.Username, u.Reason, u.AddedBy}
		},
		Dest: func(u *models.BlacklistedUser) []interface{} {
			return []interface{}{&u.UserID, &u.Username, &u.Reason, &u.AddedBy, &u.AddedAt}
		},
	})
}

// NewBlacklistedGroupRepository creates the store for blacklisted groups.
func NewBlacklistedGroupRepository(db *database.Pool) BlacklistedGroupStore {
	return NewListStore(db, Schema[models.BlacklistedGroup]{
		Kind:      "BlacklistedGroup",
		Table:     constants.TableBlacklistedGroups,
		KeyColumn: constants.ColumnGroupID,
		Columns: []string{
			constants.ColumnGroupID,
			constants.ColumnReason,
			constants.ColumnAddedBy,
			constants.ColumnDateAdded,
		},
		Args: func(g *models.BlacklistedGroup) []interface{} {
			return []interface{}{g.GroupID, g.Reason, g.AddedBy}
		},
		Dest: func(g *models.BlacklistedGroup) []interface{} {
			return []interface{}{&g.GroupID, &g.Reason, &g.AddedBy, &g.AddedAt}
		},
	})
}

// entrySchema builds the shared schema for the realm and command blacklists.
func entrySchema(kind, table string) Schema[models.BlacklistEntry] {
	return Schema[models.BlacklistEntry]{
		Kind:      kind,
		Table:     table,
		KeyColumn: constants.ColumnUserID,
		Columns: []string{
			constants.ColumnUserID,
			constants.ColumnUsername,
			constants.ColumnReason,
			constants.ColumnDateAdded,
		},
		SearchColumn: constants.ColumnUsername,
		Args: func(e *models.BlacklistEntry) []interface{} {
			return []interface{}{e.UserID, e.Username, e.Reason}
		},
		Dest: func(e *models.BlacklistEntry) []interface{} {
			return []interface{}{&e.UserID, &e.Username, &e.Reason, &e.AddedAt}
		},
	}
}

// NewRealmsBlacklistRepository creates the store for users banned from realms.
func NewRealmsBlacklistRepository(db *database.Pool) BlacklistEntryStore {
	return NewListStore(db, entrySchema("RealmBlacklistEntry", constants.TableRealmsBlacklist))
}

// NewCommandBlacklistRepository creates the store for users banned from bot commands.
func NewCommandBlacklistRepository(db *database.Pool) BlacklistEntryStore {
	return NewListStore(db, entrySchema("CommandBlacklistEntry", constants.TableCommandBlacklist))
}
