// Package memory provides in-process implementations of the persistence
// ports. They back tests and the STORE=memory mode of the server.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Repository implements port.EntityRepository over maps guarded by a mutex.
// LoadHierarchy returns deep copies so callers never share state with the
// store.
type Repository struct {
	mu        sync.RWMutex
	sets      map[uuid.UUID]*domain.CampaignSet
	campaigns map[uuid.UUID]*domain.Campaign
	adGroups  map[uuid.UUID]*domain.AdGroup
	ads       map[uuid.UUID]*domain.Ad
	keywords  map[uuid.UUID]*domain.Keyword
	results   map[uuid.UUID]domain.SyncJobResult
}

var _ port.EntityRepository = (*Repository)(nil)

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{
		sets:      make(map[uuid.UUID]*domain.CampaignSet),
		campaigns: make(map[uuid.UUID]*domain.Campaign),
		adGroups:  make(map[uuid.UUID]*domain.AdGroup),
		ads:       make(map[uuid.UUID]*domain.Ad),
		keywords:  make(map[uuid.UUID]*domain.Keyword),
		results:   make(map[uuid.UUID]domain.SyncJobResult),
	}
}

// Put stores a copy of a whole campaign set, replacing any previous version.
// Parent references are filled in from the tree shape.
func (r *Repository) Put(set *domain.CampaignSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copySet(set)
	r.sets[cp.ID] = cp
	for _, c := range cp.Campaigns {
		c.CampaignSetID = cp.ID
		r.campaigns[c.ID] = c
		for _, g := range c.AdGroups {
			g.CampaignID = c.ID
			r.adGroups[g.ID] = g
			for _, a := range g.Ads {
				a.AdGroupID = g.ID
				r.ads[a.ID] = a
			}
			for _, k := range g.Keywords {
				k.AdGroupID = g.ID
				r.keywords[k.ID] = k
			}
		}
	}
}

// LoadHierarchy returns a deep copy of the stored campaign set.
func (r *Repository) LoadHierarchy(_ context.Context, setID uuid.UUID) (*domain.CampaignSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[setID]
	if !ok {
		return nil, fmt.Errorf("campaign set %s: %w", setID, port.ErrEntityNotFound)
	}
	return copySet(set), nil
}

func (r *Repository) UpdateCampaignRemoteID(_ context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(domain.KindCampaign, id, remoteID, func() (*string, bool) {
		c, ok := r.campaigns[id]
		if !ok {
			return nil, false
		}
		return &c.RemoteID, true
	})
}

func (r *Repository) UpdateAdGroupRemoteID(_ context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(domain.KindAdGroup, id, remoteID, func() (*string, bool) {
		g, ok := r.adGroups[id]
		if !ok {
			return nil, false
		}
		return &g.RemoteID, true
	})
}

func (r *Repository) UpdateAdRemoteID(_ context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(domain.KindAd, id, remoteID, func() (*string, bool) {
		a, ok := r.ads[id]
		if !ok {
			return nil, false
		}
		return &a.RemoteID, true
	})
}

func (r *Repository) UpdateKeywordRemoteID(_ context.Context, id uuid.UUID, remoteID string) error {
	return r.setRemoteID(domain.KindKeyword, id, remoteID, func() (*string, bool) {
		k, ok := r.keywords[id]
		if !ok {
			return nil, false
		}
		return &k.RemoteID, true
	})
}

func (r *Repository) setRemoteID(kind domain.EntityKind, id uuid.UUID, remoteID string, field func() (*string, bool)) error {
	if remoteID == "" {
		return port.ErrEmptyRemoteID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	dst, ok := field()
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, port.ErrEntityNotFound)
	}
	*dst = remoteID
	return nil
}

// UpdateSyncStatus stores the sync status of one entity.
func (r *Repository) UpdateSyncStatus(_ context.Context, ref domain.EntityRef, status domain.SyncStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var dst *domain.SyncStatus
	switch ref.Kind {
	case domain.KindCampaign:
		if c, ok := r.campaigns[ref.ID]; ok {
			dst = &c.SyncStatus
		}
	case domain.KindAdGroup:
		if g, ok := r.adGroups[ref.ID]; ok {
			dst = &g.SyncStatus
		}
	case domain.KindAd:
		if a, ok := r.ads[ref.ID]; ok {
			dst = &a.SyncStatus
		}
	case domain.KindKeyword:
		if k, ok := r.keywords[ref.ID]; ok {
			dst = &k.SyncStatus
		}
	}
	if dst == nil {
		return fmt.Errorf("%s %s: %w", ref.Kind, ref.ID, port.ErrEntityNotFound)
	}
	*dst = status
	return nil
}

// SetCampaignSetStatus updates the lifecycle status of a set.
func (r *Repository) SetCampaignSetStatus(_ context.Context, setID uuid.UUID, status domain.CampaignSetStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[setID]
	if !ok {
		return fmt.Errorf("campaign set %s: %w", setID, port.ErrEntityNotFound)
	}
	set.Status = status
	return nil
}

// RecordSyncResult stores the job result and updates the set status.
func (r *Repository) RecordSyncResult(_ context.Context, result domain.SyncJobResult, syncedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[result.SetID]
	if !ok {
		return fmt.Errorf("campaign set %s: %w", result.SetID, port.ErrEntityNotFound)
	}
	set.Status = result.SetStatus()
	at := syncedAt.UTC()
	set.LastSyncedAt = &at
	r.results[result.SetID] = result
	return nil
}

// LastResult returns the most recently recorded result of a set.
func (r *Repository) LastResult(setID uuid.UUID) (domain.SyncJobResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[setID]
	return res, ok
}

func copySet(src *domain.CampaignSet) *domain.CampaignSet {
	dst := *src
	if src.LastSyncedAt != nil {
		at := *src.LastSyncedAt
		dst.LastSyncedAt = &at
	}
	dst.Campaigns = make([]*domain.Campaign, 0, len(src.Campaigns))
	for _, c := range src.Campaigns {
		cc := *c
		cc.AdGroups = make([]*domain.AdGroup, 0, len(c.AdGroups))
		for _, g := range c.AdGroups {
			gc := *g
			gc.Ads = make([]*domain.Ad, 0, len(g.Ads))
			for _, a := range g.Ads {
				ac := *a
				gc.Ads = append(gc.Ads, &ac)
			}
			gc.Keywords = make([]*domain.Keyword, 0, len(g.Keywords))
			for _, k := range g.Keywords {
				kc := *k
				gc.Keywords = append(gc.Keywords, &kc)
			}
			cc.AdGroups = append(cc.AdGroups, &gc)
		}
		dst.Campaigns = append(dst.Campaigns, &cc)
	}
	return &dst
}
