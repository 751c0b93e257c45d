// Package session holds the single source of truth for the
// authenticated identity.
package session

import (
	"log/slog"
	"sync"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/errors"
	"github.com/otakuverse/otakuverse-client/internal/store"
)

// Service owns the active session. Token and user always change
// together: there is no reachable state with one set and the other not.
// The per-user stores read the identity from here but never mutate it.
type Service struct {
	store  *store.Store
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Session
}

// NewService creates the session service and rehydrates from durable
// storage. A partial record (token without a parsable user, or the
// reverse) fails safe to the logged-out state and clears the leftovers
// rather than crashing or half-authenticating.
func NewService(s *store.Store, logger *slog.Logger) (*Service, error) {
	svc := &Service{
		store:  s,
		logger: logger,
	}

	token, user, err := s.LoadSession()
	if err != nil {
		return nil, err
	}

	switch {
	case token != "" && user != nil:
		svc.current = domain.Session{Token: token, User: user}
		logger.Info("session rehydrated", "user_id", user.ID)
	case token == "" && user == nil:
		// Genuinely logged out.
	default:
		logger.Warn("discarding partial session record")
		if err := s.DeleteSession(); err != nil {
			return nil, err
		}
	}

	return svc, nil
}

// Login persists the token and user record durably, then swaps the
// in-memory state. The durable write happens first so a crash between
// the two steps re-reads a complete session, never a partial one.
func (s *Service) Login(token string, user domain.User) error {
	if token == "" {
		return errors.Validation("token is required")
	}
	if user.ID == "" {
		return errors.Validation("user id is required")
	}

	if err := s.store.SaveSession(token, &user); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = domain.Session{Token: token, User: &user}
	s.mu.Unlock()

	s.logger.Info("logged in", "user_id", user.ID)
	return nil
}

// Logout clears durable storage and in-memory state.
func (s *Service) Logout() error {
	if err := s.store.DeleteSession(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()

	s.logger.Info("logged out")
	return nil
}

// UpdateUser replaces the user record for the active session.
func (s *Service) UpdateUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsAuthenticated() {
		return errors.Unauthorized("no active session")
	}

	if err := s.store.SaveUser(&user); err != nil {
		return err
	}
	s.current.User = &user
	return nil
}

// Current returns a copy of the active session.
func (s *Service) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether a token is held. Always derived from
// the token, never stored separately.
func (s *Service) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// UserID returns the active user id, or "" when logged out. The empty
// id feeds the stores' anonymous no-op path.
func (s *Service) UserID() string {
	return s.Current().UserID()
}
