package service

import (
	"context"
	"sort"
	"strings"

	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// Mock implementations for testing

// mockKeywordRepository is an in-memory KeywordRepository.
type mockKeywordRepository struct {
	keywords map[models.KeywordTier][]*models.FlaggedKeyword
	nextID   int64
	failWith error
}

func newMockKeywordRepository() *mockKeywordRepository {
	return &mockKeywordRepository{
		keywords: make(map[models.KeywordTier][]*models.FlaggedKeyword),
		nextID:   1,
	}
}

func (m *mockKeywordRepository) seed(tier models.KeywordTier, words ...string) {
	for _, word := range words {
		m.keywords[tier] = append(m.keywords[tier], &models.FlaggedKeyword{
			ID:      m.nextID,
			Keyword: word,
		})
		m.nextID++
	}
}

func (m *mockKeywordRepository) Create(ctx context.Context, tier models.KeywordTier, keyword string) (*models.FlaggedKeyword, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	kw := &models.FlaggedKeyword{ID: m.nextID, Keyword: keyword}
	m.nextID++
	m.keywords[tier] = append(m.keywords[tier], kw)
	return kw, nil
}

func (m *mockKeywordRepository) GetAll(ctx context.Context, tier models.KeywordTier) ([]*models.FlaggedKeyword, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := append([]*models.FlaggedKeyword{}, m.keywords[tier]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Keyword < out[j].Keyword })
	return out, nil
}

func (m *mockKeywordRepository) Delete(ctx context.Context, tier models.KeywordTier, keyword string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, kw := range m.keywords[tier] {
		if kw.Keyword == keyword {
			m.keywords[tier] = append(m.keywords[tier][:i], m.keywords[tier][i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Keyword", keyword)
}

func (m *mockKeywordRepository) Count(ctx context.Context, tier models.KeywordTier) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.keywords[tier])), nil
}

// mockStore is an in-memory Store implementation shared by the search and
// stats tests. The username function extracts the searchable field.
type mockStore[T any] struct {
	records  []*T
	username func(*T) string
	failWith error
}

func (m *mockStore[T]) Create(ctx context.Context, record *T) (*T, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.records = append(m.records, record)
	return record, nil
}

func (m *mockStore[T]) GetByKey(ctx context.Context, key int64) (*T, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return nil, utils.NewNotFoundError("Record", key)
}

func (m *mockStore[T]) GetAll(ctx context.Context) ([]*T, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.records, nil
}

func (m *mockStore[T]) Delete(ctx context.Context, key int64) error {
	return m.failWith
}

func (m *mockStore[T]) SearchByUsername(ctx context.Context, fragment string) ([]*T, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	matches := make([]*T, 0)
	for _, record := range m.records {
		if strings.Contains(strings.ToLower(m.username(record)), strings.ToLower(fragment)) {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (m *mockStore[T]) Count(ctx context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.records)), nil
}
