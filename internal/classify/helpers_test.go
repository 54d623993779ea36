package classify

import (
	"testing"

	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

const (
	frameWidth  = 640
	frameHeight = 480
)

// px is a pixel position used to place synthetic landmarks.
type px struct{ x, y int }

// buildFace returns a mesh whose landmarks sit on the given pixels of a
// 640x480 frame. Unlisted landmarks sit at the frame center.
func buildFace(t *testing.T, at map[int]px) *landmarks.Set {
	t.Helper()
	points := make([]landmarks.Point, landmarks.MeshSize)
	for i := range points {
		points[i] = landmarks.Point{X: 0.5, Y: 0.5}
	}
	for idx, p := range at {
		points[idx] = landmarks.Point{
			X: (float64(p.x) + 0.5) / frameWidth,
			Y: (float64(p.y) + 0.5) / frameHeight,
		}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		t.Fatalf("building face: %v", err)
	}
	return set
}

// outline places the face-shape landmarks for the given widths and height.
func outline(jaw, forehead, faceHeight int) map[int]px {
	return map[int]px{
		landmarks.JawRight:      {320 - jaw/2, 240},
		landmarks.JawLeft:       {320 - jaw/2 + jaw, 240},
		landmarks.ForeheadRight: {320 - forehead/2, 120},
		landmarks.ForeheadLeft:  {320 - forehead/2 + forehead, 120},
		landmarks.ForeheadTop:   {320, 40},
		landmarks.ChinBottom:    {320, 40 + faceHeight},
	}
}
