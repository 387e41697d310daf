package model

import "time"

// Import run statuses.
const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// ImportRun is the immutable audit record of one completed import attempt.
// Runs are kept most-recent-first with no automatic pruning; any truncation
// is a presentation limit, not a deletion.
type ImportRun struct {
	ID               string    `json:"id"`
	FileName         string    `json:"fileName"`
	FileSizeBytes    int64     `json:"fileSizeBytes"`
	Status           string    `json:"status"` // success/error
	RecordsProcessed int       `json:"recordsProcessed"`
	RecordsUpdated   int       `json:"recordsUpdated"`
	RecordsCreated   int       `json:"recordsCreated"`
	ErrorCount       int       `json:"errorCount"`
	ElapsedMillis    int64     `json:"elapsedMillis"`
	StartedAt        time.Time `json:"startedAt"`
}
