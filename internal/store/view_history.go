package store

import (
	"github.com/otakuverse/otakuverse-client/internal/domain"
)

// ViewHistory returns a user's view history, most recent first.
// An empty user id yields an empty list.
func (s *Store) ViewHistory(userID string) ([]domain.ViewEntry, error) {
	if userID == "" {
		return []domain.ViewEntry{}, nil
	}
	return loadList[domain.ViewEntry](s, viewHistoryPrefix+userID)
}

// AddView prepends a view entry. Views are append-only and not
// deduplicated: watching a title twice is two entries.
// An empty user id is a silent no-op.
func (s *Store) AddView(userID, title string, ctype domain.ContentType) error {
	if userID == "" {
		return nil
	}

	key := viewHistoryPrefix + userID
	history, err := loadList[domain.ViewEntry](s, key)
	if err != nil {
		return err
	}

	entries := make([]domain.ViewEntry, 0, len(history)+1)
	entries = append(entries, domain.NewViewEntry(title, ctype))
	entries = append(entries, history...)

	return saveList(s, key, entries)
}

// ClearViewHistory deletes a user's entire view history.
// An empty user id is a silent no-op.
func (s *Store) ClearViewHistory(userID string) error {
	if userID == "" {
		return nil
	}
	return s.delete([]byte(viewHistoryPrefix + userID))
}
