package domain

import "time"

// NamingStrategy records which filename-derivation rule won.
type NamingStrategy string

const (
	NamingTitle            NamingStrategy = "title"
	NamingOriginalFilename NamingStrategy = "original_filename"
	NamingCaptureDate      NamingStrategy = "capture_date"
	NamingContentHash      NamingStrategy = "content_hash"
)

// NamingDecision is the recorded strategy and justification behind a stored
// asset's filename.
type NamingDecision struct {
	Strategy NamingStrategy `db:"naming_strategy"`
	Reason   string         `db:"naming_reason"`
}

// AssetRecord is one stored binary media object. ContentHash is the SHA-256
// of the raw bytes and the deduplication key; two records never share one.
// CallerHash is whatever identifier the calling code referenced the bytes
// by and may differ across callers for identical bytes.
type AssetRecord struct {
	ID          string     `db:"id"`
	OwnerID     string     `db:"owner_id"`
	ContentHash string     `db:"content_hash"`
	CallerHash  string     `db:"caller_hash"`
	Filename    string     `db:"filename"`
	MIME        string     `db:"mime"`
	Size        int64      `db:"size"`
	URL         string     `db:"url"`
	Naming      NamingDecision
	CapturedAt  *time.Time `db:"captured_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
