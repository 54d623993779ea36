// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/kozaktomas/beauty-advisor/internal/database"
)

// MockAnalysisStore is an in-memory implementation of database.AnalysisWriter
type MockAnalysisStore struct {
	mu       sync.RWMutex
	analyses map[uuid.UUID]database.StoredAnalysis

	// Error injection
	GetError    error
	ListError   error
	CountError  error
	SaveError   error
	DeleteError error
}

// NewMockAnalysisStore creates a new empty mock store
func NewMockAnalysisStore() *MockAnalysisStore {
	return &MockAnalysisStore{
		analyses: make(map[uuid.UUID]database.StoredAnalysis),
	}
}

// Get retrieves an analysis by ID
func (m *MockAnalysisStore) Get(ctx context.Context, id uuid.UUID) (*database.StoredAnalysis, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analyses[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// List returns up to limit analyses, newest first
func (m *MockAnalysisStore) List(ctx context.Context, limit int) ([]database.StoredAnalysis, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]database.StoredAnalysis, 0, len(m.analyses))
	for _, a := range m.analyses {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b database.StoredAnalysis) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count returns the number of stored analyses
func (m *MockAnalysisStore) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.analyses), nil
}

// Save stores an analysis
func (m *MockAnalysisStore) Save(ctx context.Context, a *database.StoredAnalysis) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[a.ID] = *a
	return nil
}

// Delete removes an analysis
func (m *MockAnalysisStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.analyses[id]
	delete(m.analyses, id)
	return ok, nil
}

// Verify interface compliance
var _ database.AnalysisWriter = (*MockAnalysisStore)(nil)
