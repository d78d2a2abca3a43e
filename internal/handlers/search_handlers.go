package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// SearchHandler handles cross-entity username search routes.
type SearchHandler struct {
	searchService SearchServiceInterface
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService SearchServiceInterface) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchUser finds blacklist records whose username contains the path fragment.
func (h *SearchHandler) SearchUser(w http.ResponseWriter, r *http.Request) {
	fragment := chi.URLParam(r, constants.ParamUsername)

	result, err := h.searchService.SearchUser(r.Context(), fragment)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, result)
}
