package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kozaktomas/beauty-advisor/internal/database"
)

// AnalysisRepository provides PostgreSQL-backed analysis history
type AnalysisRepository struct {
	pool *Pool
}

// NewAnalysisRepository creates a new PostgreSQL analysis repository
func NewAnalysisRepository(pool *Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

const analysisColumns = `id, source, width, height, classification, advice, created_at`

// Save stores an analysis in the database
func (r *AnalysisRepository) Save(ctx context.Context, a *database.StoredAnalysis) error {
	classification, err := json.Marshal(a.Classification)
	if err != nil {
		return fmt.Errorf("encode classification: %w", err)
	}
	bundle, err := json.Marshal(a.Advice)
	if err != nil {
		return fmt.Errorf("encode advice: %w", err)
	}

	query := `
		INSERT INTO analyses (id, source, width, height, undertone, face_shape, nose_shape,
			eyebrows, lips, classification, advice, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			undertone = EXCLUDED.undertone,
			face_shape = EXCLUDED.face_shape,
			nose_shape = EXCLUDED.nose_shape,
			eyebrows = EXCLUDED.eyebrows,
			lips = EXCLUDED.lips,
			classification = EXCLUDED.classification,
			advice = EXCLUDED.advice,
			created_at = EXCLUDED.created_at
	`

	c := a.Classification
	_, err = r.pool.Exec(ctx, query,
		a.ID, a.Source, a.Width, a.Height,
		c.Undertone.String(), c.FaceShape.String(), c.NoseShape.String(), c.Brow.String(), c.Lip.String(),
		classification, bundle, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*database.StoredAnalysis, error) {
	var (
		a              database.StoredAnalysis
		classification []byte
		bundle         []byte
	)
	if err := row.Scan(&a.ID, &a.Source, &a.Width, &a.Height, &classification, &bundle, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(classification, &a.Classification); err != nil {
		return nil, fmt.Errorf("decode classification: %w", err)
	}
	if err := json.Unmarshal(bundle, &a.Advice); err != nil {
		return nil, fmt.Errorf("decode advice: %w", err)
	}
	return &a, nil
}

// Get retrieves an analysis by ID, returns nil if not found
func (r *AnalysisRepository) Get(ctx context.Context, id uuid.UUID) (*database.StoredAnalysis, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+analysisColumns+" FROM analyses WHERE id = $1", id)
	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

// List returns the most recent analyses, newest first
func (r *AnalysisRepository) List(ctx context.Context, limit int) ([]database.StoredAnalysis, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+analysisColumns+" FROM analyses ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []database.StoredAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return out, nil
}

// Count returns the total number of stored analyses
func (r *AnalysisRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM analyses").Scan(&n); err != nil {
		return 0, fmt.Errorf("count analyses: %w", err)
	}
	return n, nil
}

// Delete removes an analysis from the database
func (r *AnalysisRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, "DELETE FROM analyses WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete analysis: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	return n > 0, nil
}

var _ database.AnalysisWriter = (*AnalysisRepository)(nil)
