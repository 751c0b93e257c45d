package store

import (
	"github.com/otakuverse/otakuverse-client/internal/domain"
)

// Watchlist returns a user's watchlist in insertion order.
// An empty user id yields an empty list.
func (s *Store) Watchlist(userID string) ([]domain.WatchlistEntry, error) {
	if userID == "" {
		return []domain.WatchlistEntry{}, nil
	}
	return loadList[domain.WatchlistEntry](s, watchlistPrefix+userID)
}

// AddToWatchlist appends an item to the watchlist. Entries are unique
// by content id: adding an id that is already present is a silent no-op
// and keeps the original added_at.
// An empty user id is a silent no-op.
func (s *Store) AddToWatchlist(userID string, item domain.ContentItem) error {
	if userID == "" {
		return nil
	}

	key := watchlistPrefix + userID
	list, err := loadList[domain.WatchlistEntry](s, key)
	if err != nil {
		return err
	}

	for _, entry := range list {
		if entry.ContentID == item.ContentID {
			return nil
		}
	}

	list = append(list, domain.NewWatchlistEntry(item))
	return saveList(s, key, list)
}

// RemoveFromWatchlist deletes the entry with the given content id.
// Removing an absent id is a no-op.
// An empty user id is a silent no-op.
func (s *Store) RemoveFromWatchlist(userID, contentID string) error {
	if userID == "" {
		return nil
	}

	key := watchlistPrefix + userID
	list, err := loadList[domain.WatchlistEntry](s, key)
	if err != nil {
		return err
	}

	filtered := make([]domain.WatchlistEntry, 0, len(list))
	for _, entry := range list {
		if entry.ContentID != contentID {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == len(list) {
		return nil
	}

	return saveList(s, key, filtered)
}

// ClearWatchlist deletes a user's entire watchlist.
// An empty user id is a silent no-op.
func (s *Store) ClearWatchlist(userID string) error {
	if userID == "" {
		return nil
	}
	return s.delete([]byte(watchlistPrefix + userID))
}
