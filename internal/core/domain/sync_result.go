package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlatformError describes a failed platform call. Retryable errors (rate
// limits, timeouts, transport failures) are candidates for resubmitting the
// whole job; non-retryable ones need the content fixed first.
type PlatformError struct {
	Code       string
	Message    string
	Retryable  bool
	RetryAfter time.Duration
}

func (e *PlatformError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// MutationResult is what a platform adapter returns for a create or update.
type MutationResult struct {
	Success  bool
	RemoteID string
	Error    *PlatformError
}

// Succeeded builds a successful MutationResult.
func Succeeded(remoteID string) MutationResult {
	return MutationResult{Success: true, RemoteID: remoteID}
}

// Failed builds a failed MutationResult.
func Failed(err *PlatformError) MutationResult {
	return MutationResult{Error: err}
}

// EntityError is an entity-level failure captured during a sync.
// RetryAfterSeconds is the platform's advisory delay, rounded up.
type EntityError struct {
	EntityID          uuid.UUID  `json:"entityId"`
	Kind              EntityKind `json:"kind"`
	Code              string     `json:"code"`
	Message           string     `json:"message"`
	Retryable         bool       `json:"retryable"`
	RetryAfterSeconds int        `json:"retryAfterSeconds,omitempty"`
}

// NewEntityError records perr against the entity ref points to.
func NewEntityError(ref EntityRef, perr *PlatformError) EntityError {
	return EntityError{
		EntityID:          ref.ID,
		Kind:              ref.Kind,
		Code:              perr.Code,
		Message:           perr.Message,
		Retryable:         perr.Retryable,
		RetryAfterSeconds: int((perr.RetryAfter + time.Second - 1) / time.Second),
	}
}

// CampaignOutcome reports the result of one campaign node.
type CampaignOutcome struct {
	CampaignID uuid.UUID `json:"campaignId"`
	Success    bool      `json:"success"`
	RemoteID   string    `json:"remoteId,omitempty"`
}

// SyncCounts are cumulative counters reported while a sync runs.
type SyncCounts struct {
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// SyncResult aggregates the outcome of one orchestrator pass.
type SyncResult struct {
	SyncCounts
	Errors    []EntityError
	Campaigns []CampaignOutcome
}

// Add rolls a child result up into r.
func (r *SyncResult) Add(other SyncResult) {
	r.Synced += other.Synced
	r.Failed += other.Failed
	r.Skipped += other.Skipped
	r.Errors = append(r.Errors, other.Errors...)
}

// HasRetryableErrors reports whether any recorded error may succeed on resubmission.
func (r SyncResult) HasRetryableErrors() bool {
	for _, e := range r.Errors {
		if e.Retryable {
			return true
		}
	}
	return false
}
