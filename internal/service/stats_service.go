package service

import (
	"context"
	"fmt"

	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/repository"
)

// StatsService reports live record counts across every blacklist table.
type StatsService struct {
	userRepo    repository.BlacklistedUserStore
	groupRepo   repository.BlacklistedGroupStore
	realmsRepo  repository.BlacklistEntryStore
	commandRepo repository.BlacklistEntryStore
	keywordRepo repository.KeywordRepository
}

// NewStatsService creates a new StatsService over every store.
func NewStatsService(
	userRepo repository.BlacklistedUserStore,
	groupRepo repository.BlacklistedGroupStore,
	realmsRepo repository.BlacklistEntryStore,
	commandRepo repository.BlacklistEntryStore,
	keywordRepo repository.KeywordRepository,
) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		realmsRepo:  realmsRepo,
		commandRepo: commandRepo,
		keywordRepo: keywordRepo,
	}
}

// GetStats counts the records in all six tables. Counts are live queries,
// never cached, so the report always reflects the current data.
func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}

	var err error
	if stats.BlacklistedUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count blacklisted users: %w", err)
	}
	if stats.BlacklistedGroups, err = s.groupRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count blacklisted groups: %w", err)
	}
	if stats.KeywordsSpecific, err = s.keywordRepo.Count(ctx, models.TierSpecific); err != nil {
		return nil, fmt.Errorf("failed to count specific keywords: %w", err)
	}
	if stats.KeywordsNonspecific, err = s.keywordRepo.Count(ctx, models.TierNonspecific); err != nil {
		return nil, fmt.Errorf("failed to count nonspecific keywords: %w", err)
	}
	if stats.RealmsBlacklist, err = s.realmsRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count realms blacklist: %w", err)
	}
	if stats.CommandBlacklist, err = s.commandRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count command blacklist: %w", err)
	}

	return stats, nil
}
