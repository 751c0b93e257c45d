package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/otakuverse/otakuverse-client/internal/config"
	"github.com/otakuverse/otakuverse-client/internal/logger"
	"github.com/otakuverse/otakuverse-client/internal/session"
	"github.com/otakuverse/otakuverse-client/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the local database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	deviceID, err := db.DeviceID()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Local store initialized",
		"path", dbPath,
		"device_id", deviceID,
	)

	return &StoreHandle{Store: db}, nil
}

// ProvideSessionService provides the session service, rehydrated from
// durable storage.
func ProvideSessionService(i do.Injector) (*session.Service, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return session.NewService(storeHandle.Store, log.Logger)
}
