//go:build linux

package capture

import (
	"context"
	"image"

	"github.com/blackjack/webcam"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/pkg/errors"
)

type v4l2Camera struct {
	cam    *webcam.Webcam
	format uint32
	width  int
	height int
}

// Open opens a V4L2 device and starts streaming, preferring MJPEG at
// 640x480 and falling back to YUYV.
func Open(device string) (Camera, error) {
	cam, err := webcam.Open(device)
	if err != nil {
		return nil, errors.Wrap(err, "Can not open device")
	}

	supported := cam.GetSupportedFormats()
	var format webcam.PixelFormat
	switch {
	case supported[webcam.PixelFormat(FormatMJPEG)] != "":
		format = webcam.PixelFormat(FormatMJPEG)
	case supported[webcam.PixelFormat(FormatYUYV)] != "":
		format = webcam.PixelFormat(FormatYUYV)
	default:
		cam.Close()
		return nil, errors.New("Device supports neither MJPEG nor YUYV")
	}

	got, w, h, err := cam.SetImageFormat(format, constants.FrameWidth, constants.FrameHeight)
	if err != nil {
		cam.Close()
		return nil, errors.Wrap(err, "Can not set image format")
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, errors.Wrap(err, "Can not start streaming")
	}

	return &v4l2Camera{cam: cam, format: uint32(got), width: int(w), height: int(h)}, nil
}

// frameSource is the part of *webcam.Webcam that ReadFrame polls.
type frameSource interface {
	WaitForFrame(timeout uint32) error
	ReadFrame() ([]byte, error)
}

// ReadFrame waits for the next frame and decodes it.
func (c *v4l2Camera) ReadFrame(ctx context.Context) (image.Image, error) {
	buf, err := nextFrame(ctx, c.cam)
	if err != nil {
		return nil, err
	}
	return DecodeFrame(c.format, buf, c.width, c.height)
}

// nextFrame returns a copy of the next non-empty driver buffer. Driver
// timeouts are retried until ctx is done.
func nextFrame(ctx context.Context, src frameSource) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := src.WaitForFrame(1)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			continue
		default:
			return nil, errors.Wrap(err, "Frame wait failed")
		}

		frame, err := src.ReadFrame()
		if err != nil {
			return nil, errors.Wrap(err, "Read frame failed")
		}
		if len(frame) == 0 {
			continue
		}

		// the driver reuses the buffer
		buf := make([]byte, len(frame))
		copy(buf, frame)
		return buf, nil
	}
}

func (c *v4l2Camera) Close() error {
	if err := c.cam.StopStreaming(); err != nil {
		c.cam.Close()
		return errors.Wrap(err, "Can not stop streaming")
	}
	return c.cam.Close()
}
