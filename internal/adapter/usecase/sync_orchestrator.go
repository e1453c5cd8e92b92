package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"
)

// Error codes recorded for failures that do not come from the platform.
const (
	CodeLookupFailed    = "lookup_failed"
	CodePersistFailed   = "persist_failed"
	CodeMissingRemoteID = "missing_remote_id"
	CodeAdapterPanic    = "adapter_panic"
	CodeUnknown         = "unknown"
)

// Orchestrator reconciles a campaign set hierarchy against a platform. It
// walks campaigns, ad groups, ads and keywords depth-first and strictly in
// order. Every node is resolved to an update (stored or recovered remote id)
// or a create, and a node's remote id is persisted before any of its
// children is touched. A failed node is recorded and its descendants are
// left pending; siblings continue.
type Orchestrator struct {
	logger *slog.Logger
}

// NewOrchestrator returns an orchestrator logging to logger.
func NewOrchestrator(logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{logger: logger}
}

// SyncCampaignSet pushes set to the platform behind adapter. accountRemoteID
// is the platform account campaigns are created under. The hierarchy is
// updated in place with remote ids and statuses as they are persisted
// through repo. sink may be nil.
func (o *Orchestrator) SyncCampaignSet(
	ctx context.Context,
	set *domain.CampaignSet,
	accountRemoteID string,
	adapter port.PlatformAdapter,
	repo port.EntityRepository,
	sink port.ProgressSink,
) domain.SyncResult {
	run := &syncRun{
		ctx:      ctx,
		adapter:  adapter,
		platform: adapter.Platform(),
		repo:     repo,
		sink:     sink,
		logger:   o.logger.With(slog.String("set_id", set.ID.String()), slog.String("platform", string(adapter.Platform()))),
	}
	// Adapters without lookup support fall through to create.
	if finder, ok := adapter.(port.ExistingEntityFinder); ok {
		run.finder = finder
	}
	run.counts.Total = set.CountEntities()
	run.report()

	var result domain.SyncResult
	for _, c := range set.Campaigns {
		res := run.syncCampaign(c, accountRemoteID)
		result.Add(res)
		result.Campaigns = append(result.Campaigns, domain.CampaignOutcome{
			CampaignID: c.ID,
			Success:    c.SyncStatus == domain.SyncStatusSynced,
			RemoteID:   c.RemoteID,
		})
	}
	result.Total = run.counts.Total

	run.logger.Info("campaign set sync finished",
		slog.Int("synced", result.Synced),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.Int("total", result.Total),
	)
	return result
}

// syncRun carries the state of one orchestrator pass.
type syncRun struct {
	ctx      context.Context
	adapter  port.PlatformAdapter
	finder   port.ExistingEntityFinder
	platform domain.Platform
	repo     port.EntityRepository
	sink     port.ProgressSink
	logger   *slog.Logger
	counts   domain.SyncCounts
}

func (r *syncRun) syncCampaign(c *domain.Campaign, accountRemoteID string) domain.SyncResult {
	var res domain.SyncResult
	if c.Platform != "" && c.Platform != r.platform {
		r.logger.Debug("campaign targets another platform, skipping",
			slog.String("campaign_id", c.ID.String()), slog.String("campaign_platform", string(c.Platform)))
		r.skip(domain.KindCampaign, c.CountEntities(), &res)
		return res
	}

	if !r.syncNode(r.campaignNode(c), accountRemoteID, &res) {
		r.skip(domain.KindAdGroup, c.CountEntities()-1, &res)
		return res
	}
	for _, g := range c.AdGroups {
		res.Add(r.syncAdGroup(g, c.RemoteID))
	}
	return res
}

func (r *syncRun) syncAdGroup(g *domain.AdGroup, campaignRemoteID string) domain.SyncResult {
	var res domain.SyncResult
	if !r.syncNode(r.adGroupNode(g), campaignRemoteID, &res) {
		r.skip(domain.KindAd, g.CountEntities()-1, &res)
		return res
	}
	for _, a := range g.Ads {
		r.syncNode(r.adNode(a), g.RemoteID, &res)
	}
	for _, k := range g.Keywords {
		r.syncNode(r.keywordNode(k), g.RemoteID, &res)
	}
	return res
}

// node binds one hierarchy entity to the adapter and repository calls that
// apply to its level.
type node struct {
	ref      domain.EntityRef
	name     string
	remoteID *string
	status   *domain.SyncStatus
	find     func(ctx context.Context, parentRemoteID string) (string, bool, error)
	create   func(ctx context.Context, parentRemoteID string) domain.MutationResult
	update   func(ctx context.Context, remoteID string) domain.MutationResult
	persist  func(ctx context.Context, remoteID string) error
}

// syncNode resolves, executes and persists a single node and adds its
// outcome to res. It reports whether the node is synced, which is the
// condition for descending into its children.
func (r *syncRun) syncNode(n node, parentRemoteID string, res *domain.SyncResult) (ok bool) {
	log := r.logger.With(
		slog.String("kind", string(n.ref.Kind)),
		slog.String("entity_id", n.ref.ID.String()),
	)
	defer func() {
		if p := recover(); p != nil {
			log.Error("adapter panicked", slog.Any("panic", p))
			r.fail(n, &domain.PlatformError{Code: CodeAdapterPanic, Message: fmt.Sprint(p)}, res)
			ok = false
		}
	}()

	outcome := "updated"
	remoteID := *n.remoteID
	if remoteID == "" && r.finder != nil {
		found, hit, err := n.find(r.ctx, parentRemoteID)
		if err != nil {
			log.Warn("lookup of existing entity failed", slog.Any("error", err))
			r.fail(n, &domain.PlatformError{Code: CodeLookupFailed, Message: err.Error(), Retryable: true}, res)
			return false
		}
		if hit && found != "" {
			// The recovered id must be durable before the update is issued.
			if err = n.persist(r.ctx, found); err != nil {
				log.Error("persist recovered remote id", slog.String("remote_id", found), slog.Any("error", err))
				r.fail(n, &domain.PlatformError{Code: CodePersistFailed, Message: err.Error(), Retryable: true}, res)
				return false
			}
			*n.remoteID = found
			remoteID = found
			outcome = "recovered"
			log.Info("recovered existing remote entity", slog.String("remote_id", found), slog.String("name", n.name))
		}
	}

	var out domain.MutationResult
	if remoteID != "" {
		out = n.update(r.ctx, remoteID)
	} else {
		outcome = "created"
		out = n.create(r.ctx, parentRemoteID)
	}
	if !out.Success {
		perr := out.Error
		if perr == nil {
			perr = &domain.PlatformError{Code: CodeUnknown, Message: "platform call failed"}
		}
		log.Warn("platform call failed",
			slog.String("code", perr.Code),
			slog.String("error", perr.Message),
			slog.Bool("retryable", perr.Retryable),
		)
		r.fail(n, perr, res)
		return false
	}

	if out.RemoteID != "" && out.RemoteID != *n.remoteID {
		if err := n.persist(r.ctx, out.RemoteID); err != nil {
			// The entity exists remotely; the next pass recovers it by lookup.
			log.Error("persist remote id", slog.String("remote_id", out.RemoteID), slog.Any("error", err))
			r.fail(n, &domain.PlatformError{Code: CodePersistFailed, Message: err.Error(), Retryable: true}, res)
			return false
		}
		*n.remoteID = out.RemoteID
	}
	if *n.remoteID == "" {
		r.fail(n, &domain.PlatformError{Code: CodeMissingRemoteID, Message: "platform returned no remote id"}, res)
		return false
	}

	r.setStatus(n, domain.SyncStatusSynced)
	res.Synced++
	r.counts.Synced++
	metrics.EntitySyncs.WithLabelValues(string(r.platform), string(n.ref.Kind), outcome).Inc()
	log.Debug("entity synced", slog.String("remote_id", *n.remoteID), slog.String("outcome", outcome))
	r.report()
	return true
}

func (r *syncRun) fail(n node, perr *domain.PlatformError, res *domain.SyncResult) {
	r.setStatus(n, domain.SyncStatusFailed)
	res.Failed++
	res.Errors = append(res.Errors, domain.NewEntityError(n.ref, perr))
	r.counts.Failed++
	metrics.EntitySyncs.WithLabelValues(string(r.platform), string(n.ref.Kind), "failed").Inc()
	r.report()
}

// skip counts entities that were not attempted. They stay pending.
func (r *syncRun) skip(kind domain.EntityKind, count int, res *domain.SyncResult) {
	if count <= 0 {
		return
	}
	res.Skipped += count
	r.counts.Skipped += count
	metrics.EntitySyncs.WithLabelValues(string(r.platform), string(kind), "skipped").Add(float64(count))
	r.report()
}

func (r *syncRun) setStatus(n node, status domain.SyncStatus) {
	*n.status = status
	if err := r.repo.UpdateSyncStatus(r.ctx, n.ref, status); err != nil {
		r.logger.Warn("store sync status",
			slog.String("entity_id", n.ref.ID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}

func (r *syncRun) report() {
	if r.sink != nil {
		r.sink.Progress(r.counts)
	}
}

func (r *syncRun) campaignNode(c *domain.Campaign) node {
	n := node{
		ref:      domain.EntityRef{Kind: domain.KindCampaign, ID: c.ID},
		name:     c.Name,
		remoteID: &c.RemoteID,
		status:   &c.SyncStatus,
		create: func(ctx context.Context, parent string) domain.MutationResult {
			return r.adapter.CreateCampaign(ctx, c, parent)
		},
		update: func(ctx context.Context, id string) domain.MutationResult {
			return r.adapter.UpdateCampaign(ctx, c, id)
		},
		persist: func(ctx context.Context, id string) error {
			return r.repo.UpdateCampaignRemoteID(ctx, c.ID, id)
		},
	}
	if r.finder != nil {
		n.find = func(ctx context.Context, parent string) (string, bool, error) {
			return r.finder.FindCampaign(ctx, parent, c.Name)
		}
	}
	return n
}

func (r *syncRun) adGroupNode(g *domain.AdGroup) node {
	n := node{
		ref:      domain.EntityRef{Kind: domain.KindAdGroup, ID: g.ID},
		name:     g.Name,
		remoteID: &g.RemoteID,
		status:   &g.SyncStatus,
		create: func(ctx context.Context, parent string) domain.MutationResult {
			return r.adapter.CreateAdGroup(ctx, g, parent)
		},
		update: func(ctx context.Context, id string) domain.MutationResult {
			return r.adapter.UpdateAdGroup(ctx, g, id)
		},
		persist: func(ctx context.Context, id string) error {
			return r.repo.UpdateAdGroupRemoteID(ctx, g.ID, id)
		},
	}
	if r.finder != nil {
		n.find = func(ctx context.Context, parent string) (string, bool, error) {
			return r.finder.FindAdGroup(ctx, parent, g.Name)
		}
	}
	return n
}

func (r *syncRun) adNode(a *domain.Ad) node {
	n := node{
		ref:      domain.EntityRef{Kind: domain.KindAd, ID: a.ID},
		name:     a.Headline,
		remoteID: &a.RemoteID,
		status:   &a.SyncStatus,
		create: func(ctx context.Context, parent string) domain.MutationResult {
			return r.adapter.CreateAd(ctx, a, parent)
		},
		update: func(ctx context.Context, id string) domain.MutationResult {
			return r.adapter.UpdateAd(ctx, a, id)
		},
		persist: func(ctx context.Context, id string) error {
			return r.repo.UpdateAdRemoteID(ctx, a.ID, id)
		},
	}
	if r.finder != nil {
		n.find = func(ctx context.Context, parent string) (string, bool, error) {
			return r.finder.FindAd(ctx, parent, a.Headline)
		}
	}
	return n
}

func (r *syncRun) keywordNode(k *domain.Keyword) node {
	n := node{
		ref:      domain.EntityRef{Kind: domain.KindKeyword, ID: k.ID},
		name:     k.Text,
		remoteID: &k.RemoteID,
		status:   &k.SyncStatus,
		create: func(ctx context.Context, parent string) domain.MutationResult {
			return r.adapter.CreateKeyword(ctx, k, parent)
		},
		update: func(ctx context.Context, id string) domain.MutationResult {
			return r.adapter.UpdateKeyword(ctx, k, id)
		},
		persist: func(ctx context.Context, id string) error {
			return r.repo.UpdateKeywordRemoteID(ctx, k.ID, id)
		},
	}
	if r.finder != nil {
		// Keywords are matched on (text, match type), not on a name.
		n.find = func(ctx context.Context, parent string) (string, bool, error) {
			return r.finder.FindKeyword(ctx, parent, k.Key())
		}
	}
	return n
}
