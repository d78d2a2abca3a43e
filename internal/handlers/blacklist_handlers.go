package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/repository"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// ListHandler serves the CRUD routes of one blacklist kind. The same handler
// code serves every kind; the store decides which table is behind it.
type ListHandler[T any] struct {
	store    repository.Store[T]
	resource string
	keyName  string
	key      func(record *T) int64
}

// NewListHandler creates a handler over the given store. The resource name
// appears in messages, e.g. "blacklisted user"; keyName and key describe the
// record's primary key as it appears in create responses.
func NewListHandler[T any](store repository.Store[T], resource, keyName string, key func(record *T) int64) *ListHandler[T] {
	return &ListHandler[T]{
		store:    store,
		resource: resource,
		keyName:  keyName,
		key:      key,
	}
}

// NewBlacklistedUserHandler creates the handler for globally blacklisted users.
func NewBlacklistedUserHandler(store repository.BlacklistedUserStore) *ListHandler[models.BlacklistedUser] {
	return NewListHandler(store, "blacklisted user", "user_id",
		func(u *models.BlacklistedUser) int64 { return u.UserID })
}

// NewBlacklistedGroupHandler creates the handler for blacklisted groups.
func NewBlacklistedGroupHandler(store repository.BlacklistedGroupStore) *ListHandler[models.BlacklistedGroup] {
	return NewListHandler(store, "blacklisted group", "group_id",
		func(g *models.BlacklistedGroup) int64 { return g.GroupID })
}

// entryKey returns the primary key of a realm or command blacklist entry.
func entryKey(e *models.BlacklistEntry) int64 {
	return e.UserID
}

// NewRealmsBlacklistHandler creates the handler for the realms blacklist.
func NewRealmsBlacklistHandler(store repository.BlacklistEntryStore) *ListHandler[models.BlacklistEntry] {
	return NewListHandler(store, "realm blacklist entry", "user_id", entryKey)
}

// NewCommandBlacklistHandler creates the handler for the command blacklist.
func NewCommandBlacklistHandler(store repository.BlacklistEntryStore) *ListHandler[models.BlacklistEntry] {
	return NewListHandler(store, "command blacklist entry", "user_id", entryKey)
}

// pathID extracts and parses the numeric id path parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constants.ParamID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.NewValidationError(constants.ParamID, "identifier must be an integer")
	}
	return id, nil
}

// List returns all records of this kind, newest first.
func (h *ListHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAll(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, records)
}

// Get returns a single record by its numeric key.
func (h *ListHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	record, err := h.store.GetByKey(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, record)
}

// Create stores a new record from the request body.
func (h *ListHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	record := new(T)
	if err := utils.DecodeAndValidate(r, record); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	created, err := h.store.Create(r.Context(), record)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, map[string]interface{}{
		"message": h.resource + " added",
		h.keyName: h.key(created),
	})
}

// Delete removes a record by its numeric key.
func (h *ListHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": h.resource + " removed",
	})
}
