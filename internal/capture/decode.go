package capture

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pkg/errors"
)

// V4L2 fourcc codes for the pixel formats we can decode.
const (
	FormatMJPEG uint32 = 'M' | 'J'<<8 | 'P'<<16 | 'G'<<24
	FormatYUYV  uint32 = 'Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24
)

// DecodeFrame converts a raw driver buffer into an image.
func DecodeFrame(format uint32, data []byte, width, height int) (image.Image, error) {
	switch format {
	case FormatMJPEG:
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "Decode MJPEG frame failed")
		}
		return img, nil
	case FormatYUYV:
		return decodeYUYV(data, width, height)
	default:
		return nil, errors.Errorf("unsupported pixel format %#x", format)
	}
}

// decodeYUYV unpacks packed 4:2:2 (Y0 U Y1 V) into a YCbCr image.
func decodeYUYV(data []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 || width%2 != 0 {
		return nil, errors.Errorf("invalid YUYV frame size %dx%d", width, height)
	}
	if len(data) < width*height*2 {
		return nil, errors.Errorf("short YUYV frame: got %d bytes, want %d", len(data), width*height*2)
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio422)
	for y := range height {
		row := data[y*width*2 : (y+1)*width*2]
		for x := 0; x < width; x += 2 {
			i := x * 2
			img.Y[y*img.YStride+x] = row[i]
			img.Y[y*img.YStride+x+1] = row[i+2]
			ci := y*img.CStride + x/2
			img.Cb[ci] = row[i+1]
			img.Cr[ci] = row[i+3]
		}
	}
	return img, nil
}
