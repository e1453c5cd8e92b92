package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"campaign-sync/internal/adapter/memory"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// callLog records adapter and repository calls in order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) index(call string) int {
	for i, c := range l.all() {
		if c == call {
			return i
		}
	}
	return -1
}

// fakeAdapter implements only the base mutation capability. Entities are
// keyed by name (headline for ads, text for keywords).
type fakeAdapter struct {
	log        *callLog
	ids        map[string]string
	createErr  map[string]*domain.PlatformError
	updateErr  map[string]*domain.PlatformError
	panicOn    string
	creates    map[string]int
	updates    map[string]int
	nextRemote int
}

func newFakeAdapter(log *callLog) *fakeAdapter {
	return &fakeAdapter{
		log:       log,
		ids:       map[string]string{},
		createErr: map[string]*domain.PlatformError{},
		updateErr: map[string]*domain.PlatformError{},
		creates:   map[string]int{},
		updates:   map[string]int{},
	}
}

func (f *fakeAdapter) Platform() domain.Platform { return domain.PlatformReddit }

func (f *fakeAdapter) create(kind, key, parent string) domain.MutationResult {
	f.log.add("create %s %s under %s", kind, key, parent)
	f.creates[key]++
	if key == f.panicOn {
		panic("boom")
	}
	if err, ok := f.createErr[key]; ok {
		return domain.Failed(err)
	}
	id, ok := f.ids[key]
	if !ok {
		f.nextRemote++
		id = fmt.Sprintf("%s_%d", kind, f.nextRemote)
	}
	return domain.Succeeded(id)
}

func (f *fakeAdapter) update(kind, key, remoteID string) domain.MutationResult {
	f.log.add("update %s %s as %s", kind, key, remoteID)
	f.updates[key]++
	if err, ok := f.updateErr[key]; ok {
		return domain.Failed(err)
	}
	return domain.Succeeded(remoteID)
}

func (f *fakeAdapter) CreateCampaign(_ context.Context, c *domain.Campaign, parent string) domain.MutationResult {
	return f.create("campaign", c.Name, parent)
}

func (f *fakeAdapter) UpdateCampaign(_ context.Context, c *domain.Campaign, id string) domain.MutationResult {
	return f.update("campaign", c.Name, id)
}

func (f *fakeAdapter) CreateAdGroup(_ context.Context, g *domain.AdGroup, parent string) domain.MutationResult {
	return f.create("ad_group", g.Name, parent)
}

func (f *fakeAdapter) UpdateAdGroup(_ context.Context, g *domain.AdGroup, id string) domain.MutationResult {
	return f.update("ad_group", g.Name, id)
}

func (f *fakeAdapter) CreateAd(_ context.Context, a *domain.Ad, parent string) domain.MutationResult {
	return f.create("ad", a.Headline, parent)
}

func (f *fakeAdapter) UpdateAd(_ context.Context, a *domain.Ad, id string) domain.MutationResult {
	return f.update("ad", a.Headline, id)
}

func (f *fakeAdapter) CreateKeyword(_ context.Context, k *domain.Keyword, parent string) domain.MutationResult {
	return f.create("keyword", k.Text, parent)
}

func (f *fakeAdapter) UpdateKeyword(_ context.Context, k *domain.Keyword, id string) domain.MutationResult {
	return f.update("keyword", k.Text, id)
}

// findingAdapter adds lookup support on top of fakeAdapter.
type findingAdapter struct {
	*fakeAdapter
	existing map[string]string
	findErr  error
	lookups  map[string]int
}

func newFindingAdapter(log *callLog) *findingAdapter {
	return &findingAdapter{
		fakeAdapter: newFakeAdapter(log),
		existing:    map[string]string{},
		lookups:     map[string]int{},
	}
}

func (f *findingAdapter) find(kind, parent, key string) (string, bool, error) {
	f.log.add("find %s %s under %s", kind, key, parent)
	f.lookups[key]++
	if f.findErr != nil {
		return "", false, f.findErr
	}
	id, ok := f.existing[key]
	return id, ok, nil
}

func (f *findingAdapter) FindCampaign(_ context.Context, parent, name string) (string, bool, error) {
	return f.find("campaign", parent, name)
}

func (f *findingAdapter) FindAdGroup(_ context.Context, parent, name string) (string, bool, error) {
	return f.find("ad_group", parent, name)
}

func (f *findingAdapter) FindAd(_ context.Context, parent, headline string) (string, bool, error) {
	return f.find("ad", parent, headline)
}

func (f *findingAdapter) FindKeyword(_ context.Context, parent string, key domain.KeywordKey) (string, bool, error) {
	return f.find("keyword", parent, key.Text)
}

var (
	_ port.PlatformAdapter      = (*fakeAdapter)(nil)
	_ port.ExistingEntityFinder = (*findingAdapter)(nil)
)

// recordingRepo logs remote id writes into the shared call log.
type recordingRepo struct {
	*memory.Repository
	log        *callLog
	persistErr error
}

func (r *recordingRepo) UpdateCampaignRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	r.log.add("persist campaign %s", remoteID)
	if r.persistErr != nil {
		return r.persistErr
	}
	return r.Repository.UpdateCampaignRemoteID(ctx, id, remoteID)
}

func (r *recordingRepo) UpdateAdGroupRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	r.log.add("persist ad_group %s", remoteID)
	if r.persistErr != nil {
		return r.persistErr
	}
	return r.Repository.UpdateAdGroupRemoteID(ctx, id, remoteID)
}

func (r *recordingRepo) UpdateAdRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	r.log.add("persist ad %s", remoteID)
	return r.Repository.UpdateAdRemoteID(ctx, id, remoteID)
}

func (r *recordingRepo) UpdateKeywordRemoteID(ctx context.Context, id uuid.UUID, remoteID string) error {
	r.log.add("persist keyword %s", remoteID)
	return r.Repository.UpdateKeywordRemoteID(ctx, id, remoteID)
}

// recordingPublisher captures published events and done signals.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ProgressEvent
	done   []string
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.ProgressEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Done(_ context.Context, jobID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = append(p.done, jobID)
	return nil
}

func (p *recordingPublisher) terminal() []domain.ProgressEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.ProgressEvent
	for _, e := range p.events {
		if e.Type.Terminal() {
			out = append(out, e)
		}
	}
	return out
}

// newSet builds a set with one campaign, one ad group, one ad and one
// keyword. Remote ids are left empty.
func newSet(owner uuid.UUID) *domain.CampaignSet {
	return &domain.CampaignSet{
		ID:      uuid.New(),
		OwnerID: owner,
		Config:  domain.CampaignSetConfig{Platform: domain.PlatformReddit},
		Status:  domain.CampaignSetDraft,
		Campaigns: []*domain.Campaign{{
			ID:         uuid.New(),
			Name:       "MyCampaign",
			Platform:   domain.PlatformReddit,
			SyncStatus: domain.SyncStatusPending,
			AdGroups: []*domain.AdGroup{{
				ID:         uuid.New(),
				Name:       "Group A",
				SyncStatus: domain.SyncStatusPending,
				Ads: []*domain.Ad{{
					ID:         uuid.New(),
					Headline:   "Fast shoes",
					FinalURL:   "https://shoes.example",
					SyncStatus: domain.SyncStatusPending,
				}},
				Keywords: []*domain.Keyword{{
					ID:         uuid.New(),
					Text:       "running shoes",
					MatchType:  domain.MatchExact,
					SyncStatus: domain.SyncStatusPending,
				}},
			}},
		}},
	}
}
