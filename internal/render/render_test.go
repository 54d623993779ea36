package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"rose gold"}, "• rose gold\n"},
		{"two", []string{"gold", "copper"}, "• gold\n• copper\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bullets(tt.items); got != tt.want {
				t.Errorf("Bullets() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	result := classify.Result{
		Undertone: classify.UndertoneWarm,
		FaceShape: classify.FaceRound,
		NoseShape: classify.NoseWide,
		Brow:      classify.BrowArched,
		Lip:       classify.LipFull,
	}
	bundle := advice.NewSeededMapper(nil, 5).Build(result)

	var buf bytes.Buffer
	if err := WriteReport(&buf, result, bundle); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Your Features",
		"Warm (Golden",
		"Round (Similar Width And Length)",
		"Makeup that will complement you:\n\n• ",
		"Best metal tones for you:\n\n• ",
		"• " + bundle.Metals[0] + "\n",
		"Contouring Guide",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAdvice_SkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAdvice(&buf, advice.Bundle{Metals: []string{"silver"}}); err != nil {
		t.Fatalf("WriteAdvice failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Contouring Guide") {
		t.Errorf("empty section rendered:\n%s", out)
	}
	if !strings.Contains(out, "• silver") {
		t.Errorf("metals missing:\n%s", out)
	}
}

func testSet(t *testing.T) *landmarks.Set {
	t.Helper()
	points := make([]landmarks.Point, landmarks.MeshSize)
	for i := range points {
		// spread points along a horizontal segment so contours have length
		angle := float64(i) / float64(len(points))
		points[i] = landmarks.Point{X: 0.3 + 0.4*angle, Y: 0.5}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		t.Fatalf("building set: %v", err)
	}
	return set
}

func TestOverlay(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 640, 480))
	set := testSet(t)

	out := Overlay(frame, set)
	if out.Bounds() != frame.Bounds() {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), frame.Bounds())
	}

	p := set.Pixel(landmarks.NoseTip, 640, 480)
	if got := out.RGBAAt(p.X, p.Y); got == (color.RGBA{}) {
		t.Errorf("pixel under landmark %v not painted", p)
	}
	if got := frame.RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
		t.Error("Overlay modified the source frame")
	}
}

func TestOverlay_NilSet(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	frame.SetRGBA(1, 1, color.RGBA{R: 9, A: 255})
	out := Overlay(frame, nil)
	if out.RGBAAt(1, 1) != frame.RGBAAt(1, 1) {
		t.Error("expected unchanged copy for nil set")
	}
}

func TestOverlayJPEG(t *testing.T) {
	data, err := OverlayJPEG(image.NewRGBA(image.Rect(0, 0, 640, 480)), testSet(t))
	if err != nil {
		t.Fatalf("OverlayJPEG failed: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding overlay: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestLine_Clipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	line(dst, landmarks.PixelPoint{X: -5, Y: 5}, landmarks.PixelPoint{X: 20, Y: 5}, contourColor)
	for x := range 10 {
		if dst.RGBAAt(x, 5) != contourColor {
			t.Fatalf("pixel (%d,5) not drawn", x)
		}
	}
}

func TestLine_FarOutsideFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	line(dst, landmarks.PixelPoint{X: -1_000_000_000, Y: 5}, landmarks.PixelPoint{X: 1_000_000_000, Y: 5}, contourColor)
	for x := range 10 {
		if dst.RGBAAt(x, 5) != contourColor {
			t.Fatalf("pixel (%d,5) not drawn", x)
		}
	}
	if dst.RGBAAt(0, 4) != (color.RGBA{}) {
		t.Error("row above the segment was painted")
	}
}

func TestLine_MissesFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	line(dst, landmarks.PixelPoint{X: -50, Y: -50}, landmarks.PixelPoint{X: 50, Y: -20}, contourColor)
	for y := range 10 {
		for x := range 10 {
			if dst.RGBAAt(x, y) != (color.RGBA{}) {
				t.Fatalf("pixel (%d,%d) painted for a segment outside the frame", x, y)
			}
		}
	}
}

func TestClip(t *testing.T) {
	r := image.Rect(0, 0, 640, 480)
	tests := []struct {
		name     string
		from, to landmarks.PixelPoint
		wantFrom landmarks.PixelPoint
		wantTo   landmarks.PixelPoint
		wantOK   bool
	}{
		{"inside", landmarks.PixelPoint{X: 10, Y: 10}, landmarks.PixelPoint{X: 100, Y: 50}, landmarks.PixelPoint{X: 10, Y: 10}, landmarks.PixelPoint{X: 100, Y: 50}, true},
		{"right edge", landmarks.PixelPoint{X: 320, Y: 240}, landmarks.PixelPoint{X: 1280, Y: 240}, landmarks.PixelPoint{X: 320, Y: 240}, landmarks.PixelPoint{X: 639, Y: 240}, true},
		{"diagonal through", landmarks.PixelPoint{X: -100, Y: -100}, landmarks.PixelPoint{X: 1000, Y: 1000}, landmarks.PixelPoint{X: 0, Y: 0}, landmarks.PixelPoint{X: 479, Y: 479}, true},
		{"below", landmarks.PixelPoint{X: 0, Y: 500}, landmarks.PixelPoint{X: 600, Y: 900}, landmarks.PixelPoint{}, landmarks.PixelPoint{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := clip(tt.from, tt.to, r)
			if ok != tt.wantOK {
				t.Fatalf("clip() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (from != tt.wantFrom || to != tt.wantTo) {
				t.Errorf("clip() = %v -> %v, want %v -> %v", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestOverlay_LandmarksOutsideFrame(t *testing.T) {
	points := make([]landmarks.Point, landmarks.MeshSize)
	for i := range points {
		points[i] = landmarks.Point{X: 0.5, Y: 0.5}
	}
	for _, idx := range landmarks.FaceOval[:len(landmarks.FaceOval)/2] {
		points[idx] = landmarks.Point{X: landmarks.MaxCoordinate, Y: landmarks.MinCoordinate}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		t.Fatalf("building set: %v", err)
	}

	out := Overlay(image.NewRGBA(image.Rect(0, 0, 640, 480)), set)
	if got := out.RGBAAt(320, 240); got == (color.RGBA{}) {
		t.Error("in-frame landmark not painted")
	}
}
