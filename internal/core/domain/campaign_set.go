package domain

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies an external advertising platform.
type Platform string

const (
	PlatformReddit Platform = "reddit"
)

// SyncStatus is the per-entity sync state. Within one sync attempt it only
// moves forward: pending -> synced or pending -> failed.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// CampaignSetStatus is the lifecycle status of a whole campaign set.
type CampaignSetStatus string

const (
	CampaignSetDraft   CampaignSetStatus = "draft"
	CampaignSetSyncing CampaignSetStatus = "syncing"
	CampaignSetSynced  CampaignSetStatus = "synced"
	CampaignSetPartial CampaignSetStatus = "partial"
	CampaignSetFailed  CampaignSetStatus = "failed"
)

// CampaignSetConfig holds the sync target chosen for a campaign set.
type CampaignSetConfig struct {
	Platform         Platform
	AdAccountID      uuid.UUID
	FallbackStrategy string // applied upstream, carried for reference only
}

// CampaignSet is the root aggregate of the hierarchy pushed to a platform.
type CampaignSet struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Config       CampaignSetConfig
	Status       CampaignSetStatus
	LastSyncedAt *time.Time
	Campaigns    []*Campaign
}

// Campaign is the top level of the synced hierarchy. An empty RemoteID means
// the campaign has never been created on (or recovered from) the platform.
type Campaign struct {
	ID            uuid.UUID
	CampaignSetID uuid.UUID
	Name          string
	Platform      Platform
	RemoteID      string
	SyncStatus    SyncStatus
	AdGroups      []*AdGroup
}

// AdGroup belongs to a campaign and owns ads and keywords.
type AdGroup struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Name       string
	RemoteID   string
	SyncStatus SyncStatus
	Ads        []*Ad
	Keywords   []*Keyword
}

// Ad holds final content; any truncation or fallback happened upstream.
type Ad struct {
	ID          uuid.UUID
	AdGroupID   uuid.UUID
	Headline    string
	Description string
	DisplayURL  string
	FinalURL    string
	RemoteID    string
	SyncStatus  SyncStatus
}

// MatchType is the keyword match type.
type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchPhrase MatchType = "phrase"
	MatchBroad  MatchType = "broad"
)

// Keyword is a targeting keyword of an ad group.
type Keyword struct {
	ID         uuid.UUID
	AdGroupID  uuid.UUID
	Text       string
	MatchType  MatchType
	RemoteID   string
	SyncStatus SyncStatus
}

// Key returns the identity platforms use for keyword deduplication.
func (k *Keyword) Key() KeywordKey {
	return NewKeywordKey(k.Text, k.MatchType)
}

// CountEntities returns the number of nodes in the hierarchy, campaigns
// included.
func (s *CampaignSet) CountEntities() int {
	total := 0
	for _, c := range s.Campaigns {
		total += c.CountEntities()
	}
	return total
}

// CountEntities returns the size of the campaign branch including itself.
func (c *Campaign) CountEntities() int {
	total := 1
	for _, g := range c.AdGroups {
		total += g.CountEntities()
	}
	return total
}

// CountEntities returns the size of the ad group branch including itself.
func (g *AdGroup) CountEntities() int {
	return 1 + len(g.Ads) + len(g.Keywords)
}
