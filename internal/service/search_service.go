package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/repository"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// SearchService looks up a username fragment across every blacklist kind
// that records usernames.
type SearchService struct {
	userRepo    repository.BlacklistedUserStore
	realmsRepo  repository.BlacklistEntryStore
	commandRepo repository.BlacklistEntryStore
}

// NewSearchService creates a new SearchService over the three searchable stores.
func NewSearchService(
	userRepo repository.BlacklistedUserStore,
	realmsRepo repository.BlacklistEntryStore,
	commandRepo repository.BlacklistEntryStore,
) *SearchService {
	return &SearchService{
		userRepo:    userRepo,
		realmsRepo:  realmsRepo,
		commandRepo: commandRepo,
	}
}

// SearchUser finds records whose username contains the fragment,
// case-insensitively, in the global, realm and command blacklists. The three
// result lists are independent; any of them may be empty. Group records are
// never searched because they carry no username.
func (s *SearchService) SearchUser(ctx context.Context, fragment string) (*models.UserSearchResult, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, utils.NewValidationError("username", "search fragment must not be empty")
	}

	users, err := s.userRepo.SearchByUsername(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search blacklisted users: %w", err)
	}

	realms, err := s.realmsRepo.SearchByUsername(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search realms blacklist: %w", err)
	}

	commands, err := s.commandRepo.SearchByUsername(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search command blacklist: %w", err)
	}

	return &models.UserSearchResult{
		BlacklistedUsers: users,
		RealmsBlacklist:  realms,
		CommandBlacklist: commands,
	}, nil
}
