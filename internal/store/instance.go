package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const deviceIDKey = "device_id"

// DeviceID returns the stable anonymous identifier for this install,
// generating and persisting one on first use. It survives logout and is
// independent of any user identity.
func (s *Store) DeviceID() (string, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(deviceIDKey))
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id = string(raw)
		return nil
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("load device id: %w", err)
	}

	id, err = gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate device id: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(deviceIDKey), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	return id, nil
}
