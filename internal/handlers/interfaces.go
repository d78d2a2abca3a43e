// Package handlers provides the HTTP layer of the blacklist API. Handlers
// decode and validate requests, delegate to services or stores, and render
// the standard response envelope.
package handlers

import (
	"context"

	"github.com/scamguard/blacklist-api/internal/models"
)

// KeywordServiceInterface defines the keyword operations handlers depend on.
type KeywordServiceInterface interface {
	CheckText(ctx context.Context, text string) (*models.KeywordCheckResult, error)
	ListTier(ctx context.Context, tier models.KeywordTier) ([]*models.FlaggedKeyword, error)
	ListAll(ctx context.Context) ([]*models.TaggedKeyword, error)
	AddKeyword(ctx context.Context, tier models.KeywordTier, keyword string) (*models.FlaggedKeyword, error)
	RemoveKeyword(ctx context.Context, tier models.KeywordTier, keyword string) error
}

// SearchServiceInterface defines the search operations handlers depend on.
type SearchServiceInterface interface {
	SearchUser(ctx context.Context, fragment string) (*models.UserSearchResult, error)
}

// StatsServiceInterface defines the stats operations handlers depend on.
type StatsServiceInterface interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}
