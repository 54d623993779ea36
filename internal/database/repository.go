package database

import (
	"context"

	"github.com/google/uuid"
)

// AnalysisReader provides read-only access to the analysis history
type AnalysisReader interface {
	// Get retrieves an analysis by ID, returns nil if not found
	Get(ctx context.Context, id uuid.UUID) (*StoredAnalysis, error)
	// List returns the most recent analyses, newest first
	List(ctx context.Context, limit int) ([]StoredAnalysis, error)
	// Count returns the total number of stored analyses
	Count(ctx context.Context) (int, error)
}

// AnalysisWriter provides write access to the analysis history
type AnalysisWriter interface {
	AnalysisReader

	// Save stores an analysis (replaces an existing one with the same ID)
	Save(ctx context.Context, a *StoredAnalysis) error
	// Delete removes an analysis, reporting whether it existed
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
