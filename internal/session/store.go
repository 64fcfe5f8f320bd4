// Package session manages the set of currently-authenticated teacher
// sessions. The store exclusively owns the token-to-owner mapping.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBadCredentials is returned on a failed login. It deliberately
	// carries no detail about which field was wrong.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is empty, unknown, or
	// expired. Callers cannot distinguish the three cases.
	ErrInvalidToken = errors.New("teacher login required")
)

const tokenBytes = 32

// Credentials is one teacher login record from the credential source.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialSource supplies the valid teacher credentials. It is
// consulted on every login attempt and never mutated by the store.
type CredentialSource interface {
	Teachers() ([]Credentials, error)
}

type entry struct {
	id        string
	username  string
	createdAt time.Time
}

// Store maps opaque session tokens to teacher identities.
type Store struct {
	mu     sync.RWMutex
	creds  CredentialSource
	active map[string]entry
	ttl    time.Duration
	now    func() time.Time
}

// StoreOption customises Store construction.
type StoreOption func(*Store)

// WithTTL enables idle session expiry. Zero keeps sessions alive until
// an explicit logout.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore constructs a Store backed by the given credential source.
func NewStore(creds CredentialSource, opts ...StoreOption) *Store {
	s := &Store{
		creds:  creds,
		active: make(map[string]entry),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login matches the credentials against the source and, on success,
// issues a new session token. The token is cryptographically random and
// unique among active tokens.
func (s *Store) Login(username, password string) (string, error) {
	teachers, err := s.creds.Teachers()
	if err != nil {
		return "", fmt.Errorf("load teacher credentials: %w", err)
	}

	matched := false
	for _, teacher := range teachers {
		if teacher.Username == username && teacher.Password == password {
			matched = true
			break
		}
	}
	if !matched {
		return "", ErrBadCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.newToken()
	if err != nil {
		return "", err
	}
	s.active[token] = entry{
		id:        uuid.NewString(),
		username:  username,
		createdAt: s.now(),
	}
	return token, nil
}

// newToken generates a token absent from the active map. Callers must
// hold the write lock.
func (s *Store) newToken() (string, error) {
	for {
		raw := make([]byte, tokenBytes)
		if _, err := rand.Read(raw); err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}
		token := base64.RawURLEncoding.EncodeToString(raw)
		if _, exists := s.active[token]; !exists {
			return token, nil
		}
	}
}

// Validate resolves a token to its owning teacher username. It has no
// side effects beyond pruning the session when TTL expiry applies.
func (s *Store) Validate(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	s.mu.RLock()
	e, ok := s.active[token]
	s.mu.RUnlock()
	if !ok {
		return "", ErrInvalidToken
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.active, token)
		s.mu.Unlock()
		return "", ErrInvalidToken
	}
	return e.username, nil
}

// Logout removes the session. Logging out an invalid token is an error,
// not a no-op.
func (s *Store) Logout(token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.active[token]
	if !ok {
		return ErrInvalidToken
	}
	delete(s.active, token)
	if s.expired(e) {
		return ErrInvalidToken
	}
	return nil
}

// SessionID returns the non-secret identifier of the session, suitable
// for logs where the token itself must not appear.
func (s *Store) SessionID(token string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[token].id
}

// Count reports the number of active sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.createdAt) > s.ttl
}
