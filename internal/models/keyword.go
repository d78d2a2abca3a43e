package models

import "github.com/scamguard/blacklist-api/internal/constants"

// KeywordTier classifies a flagged keyword. Both tiers currently use the same
// substring matching; the tier is a label on the output, not a different
// matching strategy.
type KeywordTier string

const (
	// TierSpecific marks keywords from the specific tier.
	TierSpecific KeywordTier = "specific"

	// TierNonspecific marks keywords from the nonspecific tier.
	TierNonspecific KeywordTier = "nonspecific"
)

// Valid reports whether the tier is one of the two known tiers.
func (t KeywordTier) Valid() bool {
	return t == TierSpecific || t == TierNonspecific
}

// Table returns the database table holding keywords of this tier.
func (t KeywordTier) Table() string {
	if t == TierSpecific {
		return constants.TableKeywordsSpecific
	}
	return constants.TableKeywordsNonspecific
}

// FlaggedKeyword is a stored keyword. Keyword text is unique within its tier
// and stored as provided; matching lowercases both sides.
type FlaggedKeyword struct {
	ID      int64  `json:"id" db:"id"`
	Keyword string `json:"keyword" db:"keyword"`
}

// TaggedKeyword is a keyword annotated with its tier, as returned by the
// combined keyword listing.
type TaggedKeyword struct {
	ID      int64       `json:"id"`
	Keyword string      `json:"keyword"`
	Type    KeywordTier `json:"type"`
}

// KeywordMatch records one keyword found in checked text.
type KeywordMatch struct {
	Keyword string      `json:"keyword"`
	Type    KeywordTier `json:"type"`
}

// KeywordCheckResult is the outcome of matching text against both keyword
// tiers. No match is not an error: Flagged is false and KeywordsFound is empty.
type KeywordCheckResult struct {
	Flagged       bool           `json:"flagged"`
	KeywordsFound []KeywordMatch `json:"keywords_found"`
	Count         int            `json:"count"`
}

// KeywordCheckRequest is the body of a keyword check call.
type KeywordCheckRequest struct {
	Text string `json:"text" validate:"required"`
}

// KeywordCreateRequest is the body of a keyword creation call.
type KeywordCreateRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}
