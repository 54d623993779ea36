package landmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
)

// Provider detects a single face in an image. It returns nil, nil when no
// face is present.
type Provider interface {
	Detect(ctx context.Context, img image.Image) (*Set, error)
}

// Static always returns the same landmark set, regardless of the image.
// It lets callers analyze frames whose landmarks were computed elsewhere.
type Static struct {
	Set *Set
}

// Detect returns the configured set.
func (s Static) Detect(_ context.Context, _ image.Image) (*Set, error) {
	return s.Set, nil
}

type landmarkFile struct {
	Landmarks []Point `json:"landmarks"`
}

// Decode reads a landmark set from JSON. Both {"landmarks": [...]} and a bare
// array of points are accepted.
func Decode(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading landmarks: %w", err)
	}
	return Parse(data)
}

// Parse is Decode for an in-memory document.
func Parse(data []byte) (*Set, error) {
	var points []Point
	if err := json.Unmarshal(data, &points); err != nil {
		var f landmarkFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing landmarks: %w", err)
		}
		points = f.Landmarks
	}
	return NewSet(points)
}
