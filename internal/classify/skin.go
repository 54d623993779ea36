package classify

import (
	"image"

	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

// ColorSample is a pixel in capture-device channel order (blue, green, red).
type ColorSample struct {
	B, G, R uint8
}

// SampleSkin reads the frame color under every skin landmark. Landmarks that
// fall outside the frame are skipped.
func SampleSkin(img image.Image, set *landmarks.Set) []ColorSample {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	samples := make([]ColorSample, 0, len(landmarks.SkinSamplePoints))
	for _, idx := range landmarks.SkinSamplePoints {
		if idx >= set.Len() {
			continue
		}
		p := set.Pixel(idx, width, height)
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		r, g, b, _ := img.At(bounds.Min.X+p.X, bounds.Min.Y+p.Y).RGBA()
		samples = append(samples, ColorSample{B: uint8(b >> 8), G: uint8(g >> 8), R: uint8(r >> 8)})
	}
	return samples
}

// ClassifyUndertone averages the samples per channel and classifies the mean.
// No samples yields UndertoneUndetermined.
func ClassifyUndertone(samples []ColorSample) Undertone {
	if len(samples) == 0 {
		return UndertoneUndetermined
	}

	var blue, green, red float64
	for _, s := range samples {
		blue += float64(s.B)
		green += float64(s.G)
		red += float64(s.R)
	}
	n := float64(len(samples))
	return undertoneOf(blue/n, green/n, red/n)
}

func undertoneOf(blue, green, red float64) Undertone {
	redBlue := red - blue
	greenBlue := green - blue

	switch {
	case redBlue > 15 && greenBlue > 15:
		switch {
		case red > green*1.1:
			return UndertoneWarm
		case green > red*1.1:
			return UndertoneOlive
		default:
			return UndertoneBalanced
		}
	case redBlue < -10:
		return UndertoneCool
	default:
		return UndertoneBalanced
	}
}
