// Package service provides the business logic of the blacklist API. Services
// orchestrate operations across repositories and implement the behavior the
// handlers expose, keeping the HTTP layer free of domain rules.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/repository"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// KeywordService handles flagged keyword management and text checking.
type KeywordService struct {
	keywordRepo repository.KeywordRepository
}

// NewKeywordService creates a new KeywordService with the specified repository.
func NewKeywordService(keywordRepo repository.KeywordRepository) *KeywordService {
	return &KeywordService{
		keywordRepo: keywordRepo,
	}
}

// CheckText matches the given text against both keyword tiers and reports
// every keyword the text contains. Matching is a case-insensitive literal
// substring test; specific-tier matches always precede nonspecific ones in
// the result. Text with no matches is a normal result, not an error.
func (s *KeywordService) CheckText(ctx context.Context, text string) (*models.KeywordCheckResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewValidationError("text", constants.MsgNoTextProvided)
	}

	lowered := strings.ToLower(text)
	matches := make([]models.KeywordMatch, 0)

	for _, tier := range []models.KeywordTier{models.TierSpecific, models.TierNonspecific} {
		keywords, err := s.keywordRepo.GetAll(ctx, tier)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s keywords: %w", tier, err)
		}

		for _, kw := range keywords {
			if strings.Contains(lowered, strings.ToLower(kw.Keyword)) {
				matches = append(matches, models.KeywordMatch{
					Keyword: kw.Keyword,
					Type:    tier,
				})
			}
		}
	}

	return &models.KeywordCheckResult{
		Flagged:       len(matches) > 0,
		KeywordsFound: matches,
		Count:         len(matches),
	}, nil
}

// ListTier returns all keywords of one tier in alphabetical order.
func (s *KeywordService) ListTier(ctx context.Context, tier models.KeywordTier) ([]*models.FlaggedKeyword, error) {
	if !tier.Valid() {
		return nil, utils.NewValidationError("tier", fmt.Sprintf("unknown keyword tier: %s", tier))
	}

	return s.keywordRepo.GetAll(ctx, tier)
}

// ListAll returns every keyword from both tiers tagged with its tier,
// specific tier first, each tier alphabetical.
func (s *KeywordService) ListAll(ctx context.Context) ([]*models.TaggedKeyword, error) {
	tagged := make([]*models.TaggedKeyword, 0)

	for _, tier := range []models.KeywordTier{models.TierSpecific, models.TierNonspecific} {
		keywords, err := s.keywordRepo.GetAll(ctx, tier)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s keywords: %w", tier, err)
		}

		for _, kw := range keywords {
			tagged = append(tagged, &models.TaggedKeyword{
				ID:      kw.ID,
				Keyword: kw.Keyword,
				Type:    tier,
			})
		}
	}

	return tagged, nil
}

// AddKeyword stores a new keyword in the given tier. The keyword is trimmed
// before storage; an empty keyword or unknown tier is a validation error.
func (s *KeywordService) AddKeyword(ctx context.Context, tier models.KeywordTier, keyword string) (*models.FlaggedKeyword, error) {
	if !tier.Valid() {
		return nil, utils.NewValidationError("tier", fmt.Sprintf("unknown keyword tier: %s", tier))
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, utils.NewValidationError("keyword", "keyword must not be empty")
	}

	return s.keywordRepo.Create(ctx, tier, keyword)
}

// RemoveKeyword deletes a keyword from the given tier by its text.
func (s *KeywordService) RemoveKeyword(ctx context.Context, tier models.KeywordTier, keyword string) error {
	if !tier.Valid() {
		return utils.NewValidationError("tier", fmt.Sprintf("unknown keyword tier: %s", tier))
	}

	return s.keywordRepo.Delete(ctx, tier, keyword)
}
