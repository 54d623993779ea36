package classify

import (
	"image"

	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

// Result holds every label derived from one frame. It is always produced as a
// whole by Classify.
type Result struct {
	Undertone    Undertone    `json:"undertone"`
	FaceShape    FaceShape    `json:"face_shape"`
	NoseShape    NoseShape    `json:"nose_shape"`
	Brow         BrowStyle    `json:"eyebrows"`
	Lip          LipStyle     `json:"lips"`
	Measurements Measurements `json:"measurements"`
	SkinSamples  int          `json:"skin_samples"`
}

// Classify runs every classifier on a frame and its landmarks.
func Classify(img image.Image, set *landmarks.Set) Result {
	bounds := img.Bounds()
	m := Measure(set, bounds.Dx(), bounds.Dy())
	samples := SampleSkin(img, set)

	return Result{
		Undertone:    ClassifyUndertone(samples),
		FaceShape:    faceShapeOf(m),
		NoseShape:    noseShapeOf(m),
		Brow:         browStyleOf(m),
		Lip:          lipStyleOf(m),
		Measurements: m,
		SkinSamples:  len(samples),
	}
}
