// Package store persists call sessions. The in-memory store serves a single
// process; the Redis store shares sessions and SMS claims across replicas.
package store

import (
	"context"
	"sync"
	"time"

	"hotline/internal/session/models"
	"hotline/pkg/platform/sentinel"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// InMemory keeps sessions in a map guarded by a mutex. Entries expire after
// the configured TTL and are dropped lazily on access.
type InMemory struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
	claims   map[string]time.Time
}

type MemoryOption func(*InMemory)

// WithClock replaces the clock used for expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *InMemory) {
		s.now = now
	}
}

// NewInMemory creates a store whose entries live for ttl. A zero ttl keeps
// entries forever.
func NewInMemory(ttl time.Duration, opts ...MemoryOption) *InMemory {
	s := &InMemory{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
		claims:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemory) Get(_ context.Context, callSID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[callSID]
	if !ok || s.expired(entry.expiresAt) {
		delete(s.sessions, callSID)
		return nil, sentinel.ErrNotFound
	}
	cp := entry.session
	cp.OfferedContacts = append([]string(nil), entry.session.OfferedContacts...)
	return &cp, nil
}

func (s *InMemory) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	cp.OfferedContacts = append([]string(nil), session.OfferedContacts...)
	s.sessions[session.CallSID] = memoryEntry{session: cp, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// ClaimSMS reserves the single follow-up text for a call. A second claim
// fails with sentinel.ErrAlreadyUsed until the first is released or expires.
func (s *InMemory) ClaimSMS(_ context.Context, callSID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.claims[callSID]; ok && !s.expired(exp) {
		return sentinel.ErrAlreadyUsed
	}
	s.claims[callSID] = s.now().Add(s.ttl)
	return nil
}

func (s *InMemory) ReleaseSMS(_ context.Context, callSID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.claims, callSID)
	return nil
}

func (s *InMemory) expired(at time.Time) bool {
	return s.ttl > 0 && !s.now().Before(at)
}
