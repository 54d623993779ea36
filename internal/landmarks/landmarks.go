// Package landmarks holds the face-mesh landmark model consumed by the classifier
// and the providers that produce it.
package landmarks

import (
	"errors"
	"fmt"
	"math"
)

// Face mesh sizes produced by MediaPipe. 478 includes the refined iris points.
const (
	MeshSize        = 468
	RefinedMeshSize = 478
)

// Detectors report points slightly outside the frame for faces touching an
// edge. Anything beyond this band is not a face mesh.
const (
	MinCoordinate = -1.0
	MaxCoordinate = 2.0
)

// ErrInvalidSet is returned when a landmark set does not look like a face mesh.
var ErrInvalidSet = errors.New("invalid landmark set")

// Point is a landmark in normalized image coordinates. Z is carried through
// from the detector but never used for classification.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// PixelPoint is a landmark converted to integer pixel coordinates.
type PixelPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Set is one detected face. It is never mutated after creation.
type Set struct {
	points []Point
}

// NewSet validates and copies the given points.
func NewSet(points []Point) (*Set, error) {
	if len(points) != MeshSize && len(points) != RefinedMeshSize {
		return nil, fmt.Errorf("%w: expected %d or %d points, got %d", ErrInvalidSet, MeshSize, RefinedMeshSize, len(points))
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidSet, i)
		}
		if !inBand(p.X) || !inBand(p.Y) {
			return nil, fmt.Errorf("%w: point %d (%g, %g) is outside [%g, %g]", ErrInvalidSet, i, p.X, p.Y, MinCoordinate, MaxCoordinate)
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Set{points: cp}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func inBand(v float64) bool {
	return v >= MinCoordinate && v <= MaxCoordinate
}

// Len returns the number of landmarks.
func (s *Set) Len() int {
	return len(s.points)
}

// At returns landmark i.
func (s *Set) At(i int) Point {
	return s.points[i]
}

// Points returns a copy of all landmarks.
func (s *Set) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)
	return cp
}

// Pixel converts landmark i to pixel coordinates, truncating toward zero.
func (s *Set) Pixel(i, width, height int) PixelPoint {
	p := s.points[i]
	return PixelPoint{
		X: int(p.X * float64(width)),
		Y: int(p.Y * float64(height)),
	}
}

// Pixels converts every landmark to pixel coordinates.
func (s *Set) Pixels(width, height int) []PixelPoint {
	out := make([]PixelPoint, len(s.points))
	for i := range s.points {
		out[i] = s.Pixel(i, width, height)
	}
	return out
}
