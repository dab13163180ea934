package domain

import "time"

// Tag is a label on a source note.
type Tag struct {
	ID   string
	Name string
}

// NoteResource describes one binary embedded in a source note. BodyHash is
// the hash the note markup references the resource by; it is not the
// dedup key used by the asset store.
type NoteResource struct {
	GUID     string
	BodyHash string
	MIME     string
	Width    int
	Height   int
	Filename string
}

// SourceNote is a unit of source content in the external note service.
// It is read-only to this system and never persisted locally.
type SourceNote struct {
	GUID      string
	Title     string
	Markup    string
	TagIDs    []string
	TagNames  []string
	Resources []NoteResource
	CreatedAt time.Time
	UpdatedAt time.Time
}
