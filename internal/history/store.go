// Package history keeps the editable log of simulations.
package history

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/intermittent/are-simulator/internal/domain"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("history entry not found")

// Store persists simulation log rows in insertion order.
type Store interface {
	// Append adds an entry and returns it with its ID set.
	Append(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	Get(ctx context.Context, id string) (domain.HistoryEntry, error)
	// Update replaces every field of the entry with the same ID.
	Update(ctx context.Context, entry domain.HistoryEntry) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// ensureID assigns a new identifier to entries that have none
func ensureID(entry domain.HistoryEntry) domain.HistoryEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return entry
}

// Memory is an in-process Store, used when no database path is configured.
type Memory struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry = ensureID(entry)
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *Memory) List(_ context.Context) ([]domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexLocked(id); i >= 0 {
		return m.entries[i], nil
	}
	return domain.HistoryEntry{}, ErrNotFound
}

func (m *Memory) Update(_ context.Context, entry domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(entry.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.entries[i] = entry
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return ErrNotFound
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) indexLocked(id string) int {
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// MemoryPath selects the in-memory store, which lasts as long as the process.
const MemoryPath = ":memory:"

// Open returns a SQLite store for path, or an in-memory store when path is
// empty or MemoryPath.
func Open(path string) (Store, error) {
	if path == "" || path == MemoryPath {
		return NewMemory(), nil
	}
	return NewSQLite(path)
}
