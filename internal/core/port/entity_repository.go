package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"campaign-sync/internal/core/domain"
)

var (
	// ErrEntityNotFound is returned when a local entity id is unknown.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrEmptyRemoteID is returned when a caller tries to store an empty
	// remote id. Remote ids are never cleared once set.
	ErrEmptyRemoteID = errors.New("remote id must not be empty")
)

// EntityRepository is the persistence boundary of the sync engine. It is an
// outbound port. Every write is independent, idempotent and durable once it
// returns nil; no multi-row transactions are required.
type EntityRepository interface {
	// LoadHierarchy returns the campaign set with its ordered campaigns, ad
	// groups, ads and keywords, including stored remote ids.
	LoadHierarchy(ctx context.Context, setID uuid.UUID) (*domain.CampaignSet, error)

	UpdateCampaignRemoteID(ctx context.Context, campaignID uuid.UUID, remoteID string) error
	UpdateAdGroupRemoteID(ctx context.Context, adGroupID uuid.UUID, remoteID string) error
	UpdateAdRemoteID(ctx context.Context, adID uuid.UUID, remoteID string) error
	UpdateKeywordRemoteID(ctx context.Context, keywordID uuid.UUID, remoteID string) error

	// UpdateSyncStatus stores the per-entity sync status.
	UpdateSyncStatus(ctx context.Context, ref domain.EntityRef, status domain.SyncStatus) error

	// SetCampaignSetStatus updates the lifecycle status of a campaign set.
	SetCampaignSetStatus(ctx context.Context, setID uuid.UUID, status domain.CampaignSetStatus) error

	// RecordSyncResult stores the outcome of a sync job and the derived set
	// status and last-sync timestamp.
	RecordSyncResult(ctx context.Context, result domain.SyncJobResult, syncedAt time.Time) error
}

// AccountRepository resolves ad accounts referenced by sync jobs.
type AccountRepository interface {
	// GetAdAccount returns ErrEntityNotFound when the account does not exist.
	GetAdAccount(ctx context.Context, id uuid.UUID) (*domain.AdAccount, error)
}
