package domain

import (
	"strings"

	"github.com/google/uuid"
)

// EntityKind names a level of the campaign hierarchy.
type EntityKind string

const (
	KindCampaign EntityKind = "campaign"
	KindAdGroup  EntityKind = "ad_group"
	KindAd       EntityKind = "ad"
	KindKeyword  EntityKind = "keyword"
)

// EntityRef points at a single local entity.
type EntityRef struct {
	Kind EntityKind
	ID   uuid.UUID
}

// KeywordKey is the (text, match type) pair keywords are deduplicated by.
// Text is compared case-insensitively with surrounding space trimmed.
type KeywordKey struct {
	Text      string
	MatchType MatchType
}

// NewKeywordKey normalises text and match type into a KeywordKey.
func NewKeywordKey(text string, matchType MatchType) KeywordKey {
	return KeywordKey{
		Text:      strings.ToLower(strings.TrimSpace(text)),
		MatchType: MatchType(strings.ToLower(string(matchType))),
	}
}
