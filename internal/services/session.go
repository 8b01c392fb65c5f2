package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a token maps to no live session.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-trusted identity bound to an opaque cookie token.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type SessionStore interface {
	Create(ctx context.Context, session Session) (string, error)
	Get(ctx context.Context, token string) (Session, error)
	Destroy(ctx context.Context, token string) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// memorySessionStore is the in-process fallback used when Redis is not
// configured. Sessions do not survive a restart.
type memorySessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

// Create implements SessionStore.
func (s *memorySessionStore) Create(_ context.Context, session Session) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}

	return token, nil
}

// Get implements SessionStore. Expired entries are dropped lazily.
func (s *memorySessionStore) Get(_ context.Context, token string) (Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}

	return entry.session, nil
}

// Destroy implements SessionStore.
func (s *memorySessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
