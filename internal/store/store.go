// Package store persists per-user collections (search history, view
// history, watchlist) and the session record in a local Badger database.
//
// Each collection is stored whole as one JSON value under a key
// namespaced by user id ("<kind>_<uid>"), and every mutation is a
// synchronous read-modify-write of that value. This is a single-writer,
// single-client design: cap and dedup logic is idempotent, so
// overlapping async completions settle to a consistent final state
// without locking.
package store

import (
	"errors"
	"fmt"
	json "github.com/go-json-experiment/json"
	"io"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	domainerrors "github.com/otakuverse/otakuverse-client/internal/errors"
)

// Key namespaces for per-user collections.
const (
	searchHistoryPrefix = "search_history_"
	viewHistoryPrefix   = "view_history_"
	watchlistPrefix     = "watchlist_"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	logger.Info("Badger database opened successfully", "path", path)

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	s.logger.Info("Closing database connection")
	return s.db.Close()
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// delete removes a key from the database.
func (s *Store) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// loadList reads a whole collection value. A missing key yields an empty
// list. A value that fails to parse is treated as corrupt: it is logged
// and read as empty rather than surfaced, so a damaged record can never
// wedge the UI.
func loadList[T any](s *Store, key string) ([]T, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		s.logger.Warn("discarding corrupt stored value",
			"key", key,
			"error", domainerrors.ErrPersistenceCorrupt.WithCause(err),
		)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// saveList writes a whole collection value back under its key.
func saveList[T any](s *Store, key string, list []T) error {
	if err := s.set([]byte(key), list); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
