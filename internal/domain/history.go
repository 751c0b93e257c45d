package domain

import "time"

// SearchEntry is one row of a user's search history. Entries are unique
// by Query within a user's list; re-searching moves the entry to the head
// with a fresh timestamp. Count starts at 0 and is patched in place once
// the result set size is known.
type SearchEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}

// NewSearchEntry creates a head-of-list search entry for a just-submitted
// query. The result count is not known yet.
func NewSearchEntry(query string) SearchEntry {
	return SearchEntry{
		Query:     query,
		Timestamp: time.Now().UTC(),
		Count:     0,
	}
}

// ViewEntry is one row of a user's view history. The list is append-only
// and deliberately not deduplicated: every view is a separate entry.
type ViewEntry struct {
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
	Timestamp   time.Time   `json:"timestamp"`
}

// NewViewEntry creates a view entry stamped with the current time.
func NewViewEntry(title string, ctype ContentType) ViewEntry {
	return ViewEntry{
		Title:       title,
		ContentType: ctype,
		Timestamp:   time.Now().UTC(),
	}
}
