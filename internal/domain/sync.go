package domain

import "time"

// SyncError is a non-fatal per-item failure recorded during a sync pass.
type SyncError struct {
	SourceID string `json:"source_id"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}

// SyncResult aggregates the outcome of one sync pass for one blog.
type SyncResult struct {
	BlogID      int64
	Created     int
	Updated     int
	Unpublished int
	Skipped     int
	Candidates  int
	Errors      []SyncError

	// Failed is set when per-item failures exceeded the failure-ratio
	// threshold; items that succeeded before the pass was marked failed
	// remain persisted, but LastSyncedAt must not advance.
	Failed   bool
	Duration time.Duration
}

// FailureRatioExceeded reports whether errors affected more than a third
// of the pass's candidates.
func (r *SyncResult) FailureRatioExceeded() bool {
	return r.Candidates > 0 && len(r.Errors)*3 > r.Candidates
}
