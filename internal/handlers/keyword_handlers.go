package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// KeywordHandler handles flagged keyword routes.
type KeywordHandler struct {
	keywordService KeywordServiceInterface
}

// NewKeywordHandler creates a new KeywordHandler.
func NewKeywordHandler(keywordService KeywordServiceInterface) *KeywordHandler {
	return &KeywordHandler{
		keywordService: keywordService,
	}
}

// pathTier extracts the keyword tier path parameter.
func pathTier(r *http.Request) models.KeywordTier {
	return models.KeywordTier(chi.URLParam(r, constants.ParamTier))
}

// ListTier returns all keywords of the tier named in the path.
func (h *KeywordHandler) ListTier(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.keywordService.ListTier(r.Context(), pathTier(r))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, keywords)
}

// ListAll returns every keyword from both tiers tagged with its tier.
func (h *KeywordHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.keywordService.ListAll(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, keywords)
}

// Check matches the posted text against both keyword tiers.
func (h *KeywordHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req models.KeywordCheckRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	result, err := h.keywordService.CheckText(r.Context(), req.Text)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, result)
}

// Add stores a new keyword in the tier named in the path.
func (h *KeywordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.KeywordCreateRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	keyword, err := h.keywordService.AddKeyword(r.Context(), pathTier(r), req.Keyword)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, map[string]string{
		"message": "keyword added",
		"keyword": keyword.Keyword,
	})
}

// Remove deletes the keyword named in the path from the tier named in the path.
func (h *KeywordHandler) Remove(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, constants.ParamKeyword)

	if err := h.keywordService.RemoveKeyword(r.Context(), pathTier(r), keyword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "keyword removed",
	})
}
