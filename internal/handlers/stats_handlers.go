package handlers

import (
	"net/http"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// StatsHandler handles the aggregate statistics route.
type StatsHandler struct {
	statsService StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats reports the live record count of every blacklist table.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, stats)
}
