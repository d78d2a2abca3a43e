package handlers

import (
	"net/http"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// SystemHandler handles the service-level routes: API index, version and
// health. It holds the pool directly so health can be reported even when the
// database was never configured and no repositories exist.
type SystemHandler struct {
	db      *database.Pool
	name    string
	version string
}

// NewSystemHandler creates a new SystemHandler. The pool may be nil when the
// database is not configured.
func NewSystemHandler(db *database.Pool, name, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		name:    name,
		version: version,
	}
}

// HealthStatus is the health check response body.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
}

// Health reports service health. It distinguishes a database that was never
// configured from one that is configured but unreachable; both are 503.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		utils.SendJSON(w, constants.StatusServiceUnavailable, HealthStatus{
			Status:   "unhealthy",
			Database: "not configured",
			Message:  constants.MsgDatabaseNotConfigured,
		})
		return
	}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		utils.SendJSON(w, constants.StatusServiceUnavailable, HealthStatus{
			Status:   "unhealthy",
			Database: "error",
			Message:  err.Error(),
		})
		return
	}

	utils.SendJSON(w, constants.StatusOK, HealthStatus{
		Status:   "healthy",
		Database: "connected",
	})
}

// Version returns the service name and version.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, constants.StatusOK, map[string]string{
		"name":    h.name,
		"version": h.version,
	})
}

// Home returns a short index of the API surface.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if h.db == nil {
		dbStatus = "not configured"
	}

	utils.SendJSON(w, constants.StatusOK, map[string]interface{}{
		"message":         "Blacklist Database API",
		"version":         h.version,
		"database_status": dbStatus,
		"endpoints": map[string]string{
			"GET /health":                           "Health check",
			"GET /version":                          "Service version",
			"GET /api/blacklisted-users":            "Get all blacklisted users",
			"GET /api/blacklisted-users/{id}":       "Get specific user",
			"POST /api/blacklisted-users":           "Add user to blacklist",
			"DELETE /api/blacklisted-users/{id}":    "Remove user from blacklist",
			"GET /api/blacklisted-groups":           "Get all blacklisted groups",
			"GET /api/blacklisted-groups/{id}":      "Get specific group",
			"POST /api/blacklisted-groups":          "Add group to blacklist",
			"DELETE /api/blacklisted-groups/{id}":   "Remove group from blacklist",
			"GET /api/realms-blacklist":             "Get realms blacklist",
			"POST /api/realms-blacklist":            "Add user to realms blacklist",
			"DELETE /api/realms-blacklist/{id}":     "Remove user from realms blacklist",
			"GET /api/command-blacklist":            "Get command blacklist",
			"POST /api/command-blacklist":           "Add user to command blacklist",
			"DELETE /api/command-blacklist/{id}":    "Remove user from command blacklist",
			"GET /api/keywords/specific":            "Get specific keywords",
			"GET /api/keywords/nonspecific":         "Get nonspecific keywords",
			"GET /api/keywords/all":                 "Get all keywords",
			"POST /api/keywords/check":              "Check text for keywords",
			"POST /api/keywords/{tier}":             "Add keyword to a tier",
			"DELETE /api/keywords/{tier}/{keyword}": "Remove keyword from a tier",
			"GET /api/search/user/{username}":       "Search for user",
			"GET /api/stats":                        "Get database statistics",
		},
	})
}
