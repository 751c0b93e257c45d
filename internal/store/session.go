package store

import (
	json "github.com/go-json-experiment/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	domainerrors "github.com/otakuverse/otakuverse-client/internal/errors"
)

// Durable session keys. The token and user record are separate values
// but always written and deleted together.
const (
	tokenKey    = "token"
	userDataKey = "user_data"
)

// LoadSession reads the persisted session. A missing token yields an
// empty token; a missing or unparsable user record yields a nil user
// (corruption is logged, never surfaced). The caller decides what a
// partial record means.
func (s *Store) LoadSession() (token string, user *domain.User, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tokenKey))
		if err == nil {
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			token = string(raw)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		item, err = txn.Get([]byte(userDataKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		var u domain.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.logger.Warn("discarding corrupt stored value",
				"key", userDataKey,
				"error", domainerrors.ErrPersistenceCorrupt.WithCause(err),
			)
			return nil
		}
		user = &u
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("load session: %w", err)
	}
	return token, user, nil
}

// SaveSession persists the token and user record in a single
// transaction so a crash can never leave one without the other.
func (s *Store) SaveSession(token string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(tokenKey), []byte(token)); err != nil {
			return err
		}
		return txn.Set([]byte(userDataKey), data)
	})
}

// SaveUser persists only the user record, leaving the token untouched.
func (s *Store) SaveUser(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userDataKey), data)
	})
}

// DeleteSession removes both session keys in a single transaction.
func (s *Store) DeleteSession() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(tokenKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(userDataKey))
	})
}
