// Package storage persists workflow sessions so a report generated for a
// topic can be served from cache on later runs.
package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no session exists for a topic.
var ErrNotFound = errors.New("session not found")

// Session is a persisted workflow run keyed by normalized topic.
type Session struct {
	SessionID string    `json:"session_id"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionStore persists sessions between runs.
type SessionStore interface {
	Get(ctx context.Context, topic string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context, topic string) error
	List(ctx context.Context) ([]Session, error)
	Close() error
}

// TopicKey normalizes a topic into the cache key: lowercase, spaces to
// hyphens. "Dell" and "dell" share a session.
func TopicKey(topic string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "-")
}

// MemoryStore is an in-memory SessionStore for tests and cache-off runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get retrieves the session for a topic
func (m *MemoryStore) Get(ctx context.Context, topic string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[TopicKey(topic)]
	if !exists {
		return nil, ErrNotFound
	}
	return &session, nil
}

// Put stores or replaces the session for its topic
func (m *MemoryStore) Put(ctx context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := TopicKey(session.Topic)
	stored := *session
	if existing, exists := m.sessions[key]; exists {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	stored.UpdatedAt = time.Now().UTC()
	m.sessions[key] = stored
	return nil
}

// Delete removes the session for a topic
func (m *MemoryStore) Delete(ctx context.Context, topic string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, TopicKey(topic))
	return nil
}

// List returns all stored sessions
func (m *MemoryStore) List(ctx context.Context) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out, nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error { return nil }
