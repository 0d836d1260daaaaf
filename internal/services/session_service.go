package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Avishake00/schl-scheduler-frontend/internal/cache"
	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/repositories"
)

type SessionState int

const (
	SessionUnauthenticated SessionState = iota
	SessionAuthenticating
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAuthenticating:
		return "authenticating"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// sessionKey is the fixed mirror key holding the serialized current user.
const sessionKey = "session:user"

var ErrUnknownRole = errors.New("unknown login role")

// SessionService is the single process-wide slot holding at most one
// authenticated user, with a persisted mirror. Login and logout are the only
// writers; the mutex guards the read-modify-write of the slot so the service
// is safe in a multi-threaded host.
type SessionService struct {
	mu        sync.Mutex
	state     SessionState
	user      *models.User
	lastError string

	verifiers map[models.UserRole]CredentialVerifier
	store     cache.Store
	logger    *slog.Logger
}

// NewSessionService builds the store around a persisted mirror and one
// credential verifier per login role.
func NewSessionService(store cache.Store, verifiers map[models.UserRole]CredentialVerifier, logger *slog.Logger) *SessionService {
	return &SessionService{
		state:     SessionUnauthenticated,
		verifiers: verifiers,
		store:     store,
		logger:    logger,
	}
}

// Hydrate restores the session from the persisted mirror. Call it once at
// process start; a missing snapshot leaves the session unauthenticated.
func (s *SessionService) Hydrate(ctx context.Context) error {
	snapshot, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read session mirror: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(snapshot), &user); err != nil {
		return fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	s.mu.Lock()
	s.state = SessionAuthenticated
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("session hydrated", "user_id", user.ID, "role", user.Role)
	return nil
}

// Login verifies credentials for the given role. On success the user is held
// in memory and written to the mirror; on failure no partial state is
// retained and the failure reason stays readable via LastError.
func (s *SessionService) Login(ctx context.Context, email, secret string, role models.UserRole) (*models.User, error) {
	verifier, ok := s.verifiers[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	s.mu.Lock()
	s.state = SessionAuthenticating
	s.lastError = ""
	s.mu.Unlock()

	user, err := verifier.Verify(ctx, email, secret)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	// Best-effort mirror write; a failure only costs persistence across
	// restarts, never the login itself.
	if snapshot, marshalErr := json.Marshal(user); marshalErr != nil {
		s.logger.Warn("failed to encode session snapshot", "error", marshalErr)
	} else if storeErr := s.store.Set(ctx, sessionKey, string(snapshot)); storeErr != nil {
		s.logger.Warn("failed to persist session mirror", "error", storeErr)
	}

	s.mu.Lock()
	s.state = SessionAuthenticated
	s.user = user
	s.mu.Unlock()

	s.logger.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Logout clears the in-memory slot and removes the mirror entry.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.state = SessionUnauthenticated
	s.user = nil
	s.lastError = ""
	s.mu.Unlock()

	if err := s.store.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to remove session mirror: %w", err)
	}

	s.logger.Info("logged out")
	return nil
}

// Current returns a copy of the authenticated user, or nil.
func (s *SessionService) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the failure reason recorded by the most recent login
// attempt, or the empty string.
func (s *SessionService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *SessionService) recordFailure(err error) {
	reason := err.Error()
	var authErr *repositories.AuthError
	if errors.As(err, &authErr) {
		reason = authErr.Reason
	}

	s.mu.Lock()
	s.state = SessionUnauthenticated
	s.user = nil
	s.lastError = reason
	s.mu.Unlock()

	s.logger.Warn("login failed", "reason", reason)
}
