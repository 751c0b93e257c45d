package store

import (
	"github.com/otakuverse/otakuverse-client/internal/domain"
)

// SearchHistoryCap is the maximum number of search entries kept per
// user. The oldest entries fall off the tail.
const SearchHistoryCap = 20

// SearchHistory returns a user's search history, most recent first.
// An empty user id (anonymous browsing) yields an empty list.
func (s *Store) SearchHistory(userID string) ([]domain.SearchEntry, error) {
	if userID == "" {
		return []domain.SearchEntry{}, nil
	}
	return loadList[domain.SearchEntry](s, searchHistoryPrefix+userID)
}

// AddSearch records a search at the head of the history. An entry with
// the same query (case-sensitive exact match) is removed first, so
// re-searching moves the query to the head with a fresh timestamp and a
// reset count. The list is truncated to SearchHistoryCap.
// An empty user id is a silent no-op.
func (s *Store) AddSearch(userID, query string) error {
	if userID == "" {
		return nil
	}

	key := searchHistoryPrefix + userID
	history, err := loadList[domain.SearchEntry](s, key)
	if err != nil {
		return err
	}

	filtered := make([]domain.SearchEntry, 0, len(history)+1)
	filtered = append(filtered, domain.NewSearchEntry(query))
	for _, entry := range history {
		if entry.Query != query {
			filtered = append(filtered, entry)
		}
	}

	if len(filtered) > SearchHistoryCap {
		filtered = filtered[:SearchHistoryCap]
	}

	return saveList(s, key, filtered)
}

// PatchSearchCount records the result count for a previously added
// search. The entry is matched by query text, never by position:
// another search may have taken the head slot while this one's results
// were still in flight. Patching a query that has already fallen out of
// the list is a no-op.
// An empty user id is a silent no-op.
func (s *Store) PatchSearchCount(userID, query string, count int) error {
	if userID == "" {
		return nil
	}

	key := searchHistoryPrefix + userID
	history, err := loadList[domain.SearchEntry](s, key)
	if err != nil {
		return err
	}

	patched := false
	for i := range history {
		if history[i].Query == query {
			history[i].Count = count
			patched = true
			break
		}
	}
	if !patched {
		return nil
	}

	return saveList(s, key, history)
}

// ClearSearchHistory deletes a user's entire search history.
// An empty user id is a silent no-op.
func (s *Store) ClearSearchHistory(userID string) error {
	if userID == "" {
		return nil
	}
	return s.delete([]byte(searchHistoryPrefix + userID))
}
