package domain

import "time"

// WatchlistEntry is a content item saved to a user's watchlist. Entries
// are unique by ContentID; adding an item that is already present is a
// no-op and keeps the original AddedAt.
type WatchlistEntry struct {
	ContentItem
	AddedAt time.Time `json:"added_at"`
}

// NewWatchlistEntry wraps a content item with the current add time.
func NewWatchlistEntry(item ContentItem) WatchlistEntry {
	return WatchlistEntry{
		ContentItem: item,
		AddedAt:     time.Now().UTC(),
	}
}
