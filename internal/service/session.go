package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/store"
)

// The demo auth backend accepts any username with this password.
const sentinelPassword = "password"

// SessionService manages the authenticated user. At most one session is live
// at a time; it is persisted so the app restores authenticated on restart.
type SessionService struct {
	store  *store.Store
	logger *slog.Logger

	mu   sync.RWMutex
	user *domain.User
}

// NewSessionService creates a new session service.
func NewSessionService(st *store.Store, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{store: st, logger: logger}
}

// Restore loads a persisted session, if any. An absent or corrupt record
// leaves the service unauthenticated; the corrupt record is discarded.
func (s *SessionService) Restore() bool {
	user, ok := s.store.GetUser()
	if !ok {
		s.store.DeleteUser()
		return false
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("session restored", "username", user.Username)
	return true
}

// Login authenticates the user and persists the new session, replacing any
// prior one. A rejected login leaves the prior session untouched.
func (s *SessionService) Login(username, password string) (domain.User, error) {
	if password != sentinelPassword {
		s.logger.Warn("login rejected", "username", username)
		return domain.User{}, domain.ErrInvalidCredentials
	}

	user := domain.User{
		ID:       fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Username: username,
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.store.SaveUser(user); err != nil {
		return domain.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("login", "username", username)
	return user, nil
}

// Logout clears the session in memory and on disk. Always succeeds.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.store.DeleteUser()
	s.logger.Info("logout")
}

// User returns the current user, if authenticated.
func (s *SessionService) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is currently held.
func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}
