package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/user"
)

var ErrNoSession = errors.New("no session")

// Authenticator resolves credentials to a User; *user.Service satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (user.User, error)
}

// Session holds at most one authenticated identity.
type Session struct {
	mu     sync.RWMutex
	auth   Authenticator
	logger core.Logger
	usr    *user.User
	id     uuid.UUID
}

func New(auth Authenticator, logger core.Logger) *Session {
	return &Session{auth: auth, logger: logger}
}

// Login authenticates the credentials and, on success, holds the identity and returns its role.
// Bad credentials return core.ErrAuthFailure and leave the held identity untouched.
// A successful login replaces any identity already held.
func (s *Session) Login(ctx context.Context, username, password string) (string, error) {
	usr, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			s.logger.Info("failed login for '" + username + "'")
			return "", core.ErrAuthFailure
		}
		return "", errors.Wrap(err, "authenticating")
	}

	id := uuid.New()
	s.mu.Lock()
	s.usr = &usr
	s.id = id
	s.mu.Unlock()

	s.logger.Info("login: session "+id.String(), usr)
	return usr.Role, nil
}

// Current returns the held identity or ErrNoSession.
func (s *Session) Current() (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usr == nil {
		return user.User{}, ErrNoSession
	}
	return *s.usr, nil
}

// ID identifies the current login; it is uuid.Nil when no one is logged in.
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *Session) IsAuthenticated() bool {
	_, err := s.Current()
	return err == nil
}

// Logout clears the held identity.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usr = nil
	s.id = uuid.Nil
}
