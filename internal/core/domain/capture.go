package domain

import "time"

// CaptureRecord is one saved job posting, kept locally so repeat
// captures of the same listing update the existing page instead of
// creating a duplicate.
type CaptureRecord struct {
	// ID is the local record identifier.
	ID string

	// JobURL is the listing's source URL, the upsert key.
	JobURL string

	// PageID is the written record's identifier in the external service.
	PageID string

	// PageURL is the written record's permalink.
	PageURL string

	// Company is the extracted organisation name.
	Company string

	// Title is the extracted role title.
	Title string

	// SavedAt is when the record was first written.
	SavedAt time.Time

	// UpdatedAt is when the record was last written.
	UpdatedAt time.Time
}

// DuplicateMatch is the outcome of a duplicate lookup.
type DuplicateMatch struct {
	// IsDuplicate is true when an existing record matched the URL.
	IsDuplicate bool

	// ExistingID is the matched record's identifier, empty otherwise.
	ExistingID string

	// ExistingURL is the matched record's permalink, empty otherwise.
	ExistingURL string
}
