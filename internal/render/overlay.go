package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"math"

	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"golang.org/x/image/draw"
)

var (
	meshColor    = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	contourColor = color.RGBA{R: 48, G: 255, B: 48, A: 255}
	lipColor     = color.RGBA{R: 255, G: 48, B: 48, A: 255}
)

// Overlay returns a copy of frame with the landmark mesh drawn on it: every
// point as a dot, plus the face outline and lip contour.
func Overlay(frame image.Image, set *landmarks.Set) *image.RGBA {
	bounds := frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), frame, bounds.Min, draw.Src)
	if set == nil {
		return dst
	}

	w, h := bounds.Dx(), bounds.Dy()
	for _, p := range set.Pixels(w, h) {
		dot(dst, p, meshColor)
	}
	polyline(dst, set, landmarks.FaceOval, w, h, contourColor)
	polyline(dst, set, landmarks.Lips, w, h, lipColor)
	return dst
}

// WriteOverlayJPEG draws the overlay and encodes it as JPEG.
func WriteOverlayJPEG(w io.Writer, frame image.Image, set *landmarks.Set) error {
	if err := jpeg.Encode(w, Overlay(frame, set), &jpeg.Options{Quality: constants.OverlayJPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode overlay: %w", err)
	}
	return nil
}

// OverlayJPEG is WriteOverlayJPEG into a byte slice.
func OverlayJPEG(frame image.Image, set *landmarks.Set) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteOverlayJPEG(&buf, frame, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dot(dst *image.RGBA, p landmarks.PixelPoint, c color.RGBA) {
	r := image.Rect(p.X-1, p.Y-1, p.X+1, p.Y+1).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// polyline connects the given landmark indices as a closed contour.
func polyline(dst *image.RGBA, set *landmarks.Set, indices []int, w, h int, c color.RGBA) {
	n := len(indices)
	for i := range n {
		a, b := indices[i], indices[(i+1)%n]
		if a >= set.Len() || b >= set.Len() {
			continue
		}
		line(dst, set.Pixel(a, w, h), set.Pixel(b, w, h), c)
	}
}

// line rasterizes a segment with Bresenham's algorithm, clipped to dst.
func line(dst *image.RGBA, from, to landmarks.PixelPoint, c color.RGBA) {
	bounds := dst.Bounds()
	from, to, ok := clip(from, to, bounds)
	if !ok {
		return
	}

	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if (image.Point{X: x0, Y: y0}).In(bounds) {
			dst.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clip trims a segment to the pixels of r (Liang-Barsky). ok is false when
// the segment misses r.
func clip(from, to landmarks.PixelPoint, r image.Rectangle) (landmarks.PixelPoint, landmarks.PixelPoint, bool) {
	if r.Empty() {
		return from, to, false
	}
	x0, y0 := float64(from.X), float64(from.Y)
	dx, dy := float64(to.X)-x0, float64(to.Y)-y0

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X-1) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return from, to, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return from, to, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return from, to, false
			}
			t1 = min(t1, t)
		}
	}

	at := func(t float64) landmarks.PixelPoint {
		return landmarks.PixelPoint{X: int(math.Round(x0 + t*dx)), Y: int(math.Round(y0 + t*dy))}
	}
	return at(t0), at(t1), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
