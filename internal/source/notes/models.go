package notes

import "time"

// NoteFilter narrows a metadata search. TagID and UpdatedSince are
// optional; an empty filter matches the whole notebook. Offset selects a
// later page of the same search.
type NoteFilter struct {
	NotebookID   string
	TagID        string
	UpdatedSince *time.Time
	PageSize     int
	Offset       int
}

// NoteMetadata is the lightweight listing entry returned by a metadata
// search. Tag ids are always present; names require a separate lookup.
type NoteMetadata struct {
	GUID      string
	Title     string
	TagIDs    []string
	UpdatedAt time.Time
}

// MetadataPage is one page of search results plus the account-wide update
// counter observed at search time.
type MetadataPage struct {
	Notes       []NoteMetadata
	UpdateCount int
}

type apiError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfterSeconds"`
}

type apiTag struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

type apiResource struct {
	GUID     string `json:"guid"`
	BodyHash string `json:"bodyHash"`
	MIME     string `json:"mime"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Filename string `json:"fileName"`
}

type apiNoteMetadata struct {
	GUID    string   `json:"guid"`
	Title   string   `json:"title"`
	TagIDs  []string `json:"tagGuids"`
	Updated int64    `json:"updated"`
}

type apiSearchResponse struct {
	Notes       []apiNoteMetadata `json:"notes"`
	UpdateCount int               `json:"updateCount"`
	TotalNotes  int               `json:"totalNotes"`
}

type apiNote struct {
	GUID      string        `json:"guid"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	TagIDs    []string      `json:"tagGuids"`
	Resources []apiResource `json:"resources"`
	Created   int64         `json:"created"`
	Updated   int64         `json:"updated"`
}

type apiTagNamesResponse struct {
	Names []string `json:"names"`
}
