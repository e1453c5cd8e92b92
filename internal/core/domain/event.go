package domain

import "time"

// ProgressEventType is the kind of a progress stream event.
type ProgressEventType string

const (
	EventProgress  ProgressEventType = "progress"
	EventCompleted ProgressEventType = "completed"
	EventError     ProgressEventType = "error"
)

// Terminal reports whether the event ends the job's stream.
func (t ProgressEventType) Terminal() bool {
	return t == EventCompleted || t == EventError
}

// ProgressData is the payload of a progress event. Counts are set for
// progress and completed events, Error for error events.
type ProgressData struct {
	*SyncCounts
	Error string `json:"error,omitempty"`
}

// ProgressEvent is one message on the live progress stream of a job.
type ProgressEvent struct {
	Type          ProgressEventType `json:"type"`
	JobID         string            `json:"jobId"`
	CampaignSetID string            `json:"campaignSetId"`
	Timestamp     time.Time         `json:"timestamp"`
	Data          ProgressData      `json:"data"`
}
