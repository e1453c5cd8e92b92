package port

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"campaign-sync/internal/core/domain"
)

// ErrUnsupportedPlatform is returned when no adapter exists for a platform.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// PlatformAdapter is the base mutation capability every platform adapter
// provides. Create receives the parent's remote id (the platform account id
// for campaigns); Update receives the entity's own remote id. Failures are
// returned as data in the MutationResult, never as panics.
type PlatformAdapter interface {
	Platform() domain.Platform

	CreateCampaign(ctx context.Context, c *domain.Campaign, accountRemoteID string) domain.MutationResult
	UpdateCampaign(ctx context.Context, c *domain.Campaign, remoteID string) domain.MutationResult

	CreateAdGroup(ctx context.Context, g *domain.AdGroup, campaignRemoteID string) domain.MutationResult
	UpdateAdGroup(ctx context.Context, g *domain.AdGroup, remoteID string) domain.MutationResult

	CreateAd(ctx context.Context, a *domain.Ad, adGroupRemoteID string) domain.MutationResult
	UpdateAd(ctx context.Context, a *domain.Ad, remoteID string) domain.MutationResult

	CreateKeyword(ctx context.Context, k *domain.Keyword, adGroupRemoteID string) domain.MutationResult
	UpdateKeyword(ctx context.Context, k *domain.Keyword, remoteID string) domain.MutationResult
}

// ExistingEntityFinder is an optional adapter capability used to recover
// remote ids that were created on the platform but never stored locally.
// Callers discover it with a type assertion; adapters without it are
// treated as always missing.
type ExistingEntityFinder interface {
	FindCampaign(ctx context.Context, accountRemoteID, name string) (remoteID string, found bool, err error)
	FindAdGroup(ctx context.Context, campaignRemoteID, name string) (remoteID string, found bool, err error)
	FindAd(ctx context.Context, adGroupRemoteID, headline string) (remoteID string, found bool, err error)
	FindKeyword(ctx context.Context, adGroupRemoteID string, key domain.KeywordKey) (remoteID string, found bool, err error)
}

// AdapterConfig carries per-job parameters needed to talk to a platform.
type AdapterConfig struct {
	AccountRemoteID     string
	FundingInstrumentID string
	TokenSource         oauth2.TokenSource
}

// AdapterFactory builds platform adapters for sync jobs.
type AdapterFactory interface {
	Supports(platform domain.Platform) bool
	// NewAdapter returns ErrUnsupportedPlatform for unknown platforms.
	NewAdapter(ctx context.Context, platform domain.Platform, cfg AdapterConfig) (PlatformAdapter, error)
}
