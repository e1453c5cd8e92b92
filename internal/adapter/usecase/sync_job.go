package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/oauth2"

	"campaign-sync/internal/adapter/breaker"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"
)

// SyncJobHandler runs sync jobs: it validates the job's preconditions,
// builds the platform adapter, runs the orchestrator under the platform's
// circuit breaker and publishes progress and the terminal event.
type SyncJobHandler struct {
	factory      port.AdapterFactory
	accounts     port.AccountRepository
	tokens       port.TokenProvider
	repo         port.EntityRepository
	breakers     port.BreakerRegistry
	orchestrator *Orchestrator
	events       port.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

var _ port.SyncJobHandler = (*SyncJobHandler)(nil)

// SyncJobDeps groups the collaborators of a SyncJobHandler.
type SyncJobDeps struct {
	Factory      port.AdapterFactory
	Accounts     port.AccountRepository
	Tokens       port.TokenProvider
	Repo         port.EntityRepository
	Breakers     port.BreakerRegistry
	Orchestrator *Orchestrator
	Events       port.EventPublisher
	Logger       *slog.Logger
}

func NewSyncJobHandler(d SyncJobDeps) *SyncJobHandler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	orch := d.Orchestrator
	if orch == nil {
		orch = NewOrchestrator(logger)
	}
	return &SyncJobHandler{
		factory:      d.Factory,
		accounts:     d.Accounts,
		tokens:       d.Tokens,
		repo:         d.Repo,
		breakers:     d.Breakers,
		orchestrator: orch,
		events:       d.Events,
		logger:       logger,
		now:          time.Now,
	}
}

// Handle runs one job. A fatal precondition or storage error is returned
// and published as a single error event; otherwise the result is returned
// and published as the completed event. The done signal is sent exactly
// once in both cases.
func (h *SyncJobHandler) Handle(
	ctx context.Context,
	jobID string,
	payload domain.SyncJobPayload,
) (*domain.SyncJobResult, error) {
	start := h.now()
	log := h.logger.With(
		slog.String("job_id", jobID),
		slog.String("set_id", payload.CampaignSetID.String()),
		slog.String("platform", string(payload.Platform)),
	)
	// Terminal publishing must survive a cancelled job context.
	pubCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := h.events.Done(pubCtx, jobID); err != nil {
			log.Warn("publish done signal", slog.Any("error", err))
		}
		metrics.SyncJobDuration.WithLabelValues(string(payload.Platform)).Observe(time.Since(start).Seconds())
	}()

	result, err := h.runSafely(ctx, jobID, payload, log)
	if err != nil {
		log.Error("sync job failed", slog.Any("error", err))
		metrics.SyncJobs.WithLabelValues(string(payload.Platform), "error").Inc()
		h.publish(pubCtx, log, domain.ProgressEvent{
			Type:          domain.EventError,
			JobID:         jobID,
			CampaignSetID: payload.CampaignSetID.String(),
			Timestamp:     h.now(),
			Data:          domain.ProgressData{Error: err.Error()},
		})
		return nil, err
	}

	metrics.SyncJobs.WithLabelValues(string(payload.Platform), "completed").Inc()
	h.publish(pubCtx, log, domain.ProgressEvent{
		Type:          domain.EventCompleted,
		JobID:         jobID,
		CampaignSetID: payload.CampaignSetID.String(),
		Timestamp:     h.now(),
		Data: domain.ProgressData{SyncCounts: &domain.SyncCounts{
			Synced:  result.Synced,
			Failed:  result.Failed,
			Skipped: result.Skipped,
			Total:   result.Synced + result.Failed + result.Skipped,
		}},
	})
	log.Info("sync job completed",
		slog.Bool("success", result.Success),
		slog.Int("synced", result.Synced),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

// runSafely turns a panic below the handler into a job error so the
// terminal error event is still published.
func (h *SyncJobHandler) runSafely(
	ctx context.Context,
	jobID string,
	payload domain.SyncJobPayload,
	log *slog.Logger,
) (res *domain.SyncJobResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("sync job panicked", slog.Any("panic", p), slog.String("stack", string(debug.Stack())))
			res, err = nil, fmt.Errorf("sync job panicked: %v", p)
		}
	}()
	return h.run(ctx, jobID, payload, log)
}

func (h *SyncJobHandler) run(
	ctx context.Context,
	jobID string,
	payload domain.SyncJobPayload,
	log *slog.Logger,
) (*domain.SyncJobResult, error) {
	if !h.factory.Supports(payload.Platform) {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, payload.Platform)
	}

	account, err := h.accounts.GetAdAccount(ctx, payload.AdAccountID)
	if err != nil {
		if errors.Is(err, port.ErrEntityNotFound) {
			return nil, fmt.Errorf("ad account %s: %w", payload.AdAccountID, port.ErrAccountNotOwned)
		}
		return nil, fmt.Errorf("get ad account: %w", err)
	}
	if account.UserID != payload.UserID {
		return nil, fmt.Errorf("ad account %s: %w", payload.AdAccountID, port.ErrAccountNotOwned)
	}
	if account.Platform != payload.Platform {
		return nil, fmt.Errorf("ad account %s is on %q: %w", account.ID, account.Platform, port.ErrUnsupportedPlatform)
	}

	token, err := h.tokens.Token(ctx, payload.AdAccountID)
	if err != nil {
		return nil, fmt.Errorf("token for ad account %s: %w", payload.AdAccountID, err)
	}
	if !token.Valid() {
		return nil, fmt.Errorf("token for ad account %s: %w", payload.AdAccountID, port.ErrCredentialUnavailable)
	}

	adapter, err := h.factory.NewAdapter(ctx, payload.Platform, port.AdapterConfig{
		AccountRemoteID:     account.RemoteAccountID,
		FundingInstrumentID: payload.FundingInstrumentID,
		TokenSource:         oauth2.StaticTokenSource(token),
	})
	if err != nil {
		return nil, fmt.Errorf("build %s adapter: %w", payload.Platform, err)
	}

	set, err := h.repo.LoadHierarchy(ctx, payload.CampaignSetID)
	if err != nil {
		return nil, fmt.Errorf("load campaign set: %w", err)
	}
	if set.OwnerID != payload.UserID {
		return nil, fmt.Errorf("campaign set %s: %w", set.ID, port.ErrAccountNotOwned)
	}

	permit, err := h.breakers.Get(payload.Platform).CanExecute()
	if err != nil {
		return nil, err
	}
	// An attempt that ends without an outcome, a panic included, counts
	// against the platform so a half-open probe is never left in flight.
	outcomeRecorded := false
	defer func() {
		if !outcomeRecorded {
			permit.RecordFailure()
		}
	}()

	if err = h.repo.SetCampaignSetStatus(ctx, set.ID, domain.CampaignSetSyncing); err != nil {
		// Nothing reached the platform; release the attempt without blame.
		permit.RecordSuccess()
		outcomeRecorded = true
		return nil, fmt.Errorf("mark campaign set syncing: %w", err)
	}

	// The set must not stay syncing when the job ends early.
	var result *domain.SyncJobResult
	settled := false
	defer func() {
		if settled {
			return
		}
		status := domain.CampaignSetFailed
		if result != nil {
			status = result.SetStatus()
		}
		if rerr := h.repo.SetCampaignSetStatus(context.WithoutCancel(ctx), set.ID, status); rerr != nil {
			log.Warn("reset campaign set status", slog.String("status", string(status)), slog.Any("error", rerr))
		}
	}()

	sink := port.ProgressSinkFunc(func(counts domain.SyncCounts) {
		h.publish(ctx, log, domain.ProgressEvent{
			Type:          domain.EventProgress,
			JobID:         jobID,
			CampaignSetID: set.ID.String(),
			Timestamp:     h.now(),
			Data:          domain.ProgressData{SyncCounts: &counts},
		})
	})
	syncResult := h.orchestrator.SyncCampaignSet(ctx, set, account.RemoteAccountID, adapter, h.repo, sink)
	breaker.RecordOutcome(permit, syncResult)
	outcomeRecorded = true

	jobResult := domain.NewSyncJobResult(set.ID, syncResult)
	result = &jobResult
	if err = h.repo.RecordSyncResult(ctx, jobResult, h.now()); err != nil {
		return nil, fmt.Errorf("record sync result: %w", err)
	}
	settled = true
	return result, nil
}

func (h *SyncJobHandler) publish(ctx context.Context, log *slog.Logger, event domain.ProgressEvent) {
	if err := h.events.Publish(ctx, event); err != nil {
		log.Warn("publish progress event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}
}
