package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/kozaktomas/beauty-advisor/internal/constants"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ErrInvalidImage is returned when uploaded bytes are not a supported image.
var ErrInvalidImage = errors.New("invalid image")

// DecodeFrame decodes a JPEG, PNG or BMP image. Images larger than
// constants.MaxDecodedPixels are rejected from their header alone.
func DecodeFrame(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrInvalidImage, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > constants.MaxDecodedPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidImage, cfg.Width, cfg.Height, constants.MaxDecodedPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// NormalizeFrame scales img to the 640x480 frame the classifier thresholds
// are calibrated for. The aspect ratio is not preserved. A frame that already
// has the right size is copied so callers may draw on the result.
func NormalizeFrame(img image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, constants.FrameWidth, constants.FrameHeight))
	bounds := img.Bounds()
	if bounds.Dx() == constants.FrameWidth && bounds.Dy() == constants.FrameHeight {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
