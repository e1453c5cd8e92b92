package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncJobPayload is the input of a sync job.
type SyncJobPayload struct {
	CampaignSetID       uuid.UUID `json:"campaignSetId"`
	UserID              uuid.UUID `json:"userId"`
	AdAccountID         uuid.UUID `json:"adAccountId"`
	FundingInstrumentID string    `json:"fundingInstrumentId"`
	Platform            Platform  `json:"platform"`
}

// SyncJobResult is the output of a sync job that reached the orchestrator.
type SyncJobResult struct {
	Success   bool              `json:"success"`
	SetID     uuid.UUID         `json:"setId"`
	Synced    int               `json:"synced"`
	Failed    int               `json:"failed"`
	Skipped   int               `json:"skipped"`
	Errors    []EntityError     `json:"errors"`
	Campaigns []CampaignOutcome `json:"campaigns"`
}

// NewSyncJobResult converts an orchestrator result into the job output.
// Partial success counts as success.
func NewSyncJobResult(setID uuid.UUID, r SyncResult) SyncJobResult {
	errs := r.Errors
	if errs == nil {
		errs = []EntityError{}
	}
	campaigns := r.Campaigns
	if campaigns == nil {
		campaigns = []CampaignOutcome{}
	}
	return SyncJobResult{
		Success:   r.Synced > 0 || r.Failed == 0,
		SetID:     setID,
		Synced:    r.Synced,
		Failed:    r.Failed,
		Skipped:   r.Skipped,
		Errors:    errs,
		Campaigns: campaigns,
	}
}

// SetStatus derives the campaign set lifecycle status from a job result.
func (r SyncJobResult) SetStatus() CampaignSetStatus {
	switch {
	case r.Failed == 0 && r.Skipped == 0:
		return CampaignSetSynced
	case r.Synced > 0:
		return CampaignSetPartial
	default:
		return CampaignSetFailed
	}
}

// JobStatus is the state of a queued sync job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// JobState is a snapshot of a job as seen by the runner.
type JobState struct {
	ID         string         `json:"id"`
	Payload    SyncJobPayload `json:"payload"`
	Status     JobStatus      `json:"status"`
	Result     *SyncJobResult `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
	EnqueuedAt time.Time      `json:"enqueuedAt"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
}
