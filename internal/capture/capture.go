// Package capture grabs still frames from a V4L2 webcam.
package capture

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned by Open on platforms without V4L2.
var ErrUnsupported = errors.New("webcam capture is only supported on linux")

// Camera yields decoded frames from an open device.
type Camera interface {
	ReadFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// Tick is called once per countdown second with the seconds remaining and
// the frame read at that moment.
type Tick func(remaining int, frame image.Image)

// Countdown reads a frame every second for the given duration, reporting
// each through tick, then returns the frame read after the countdown ends.
func Countdown(ctx context.Context, cam Camera, d time.Duration, tick Tick) (image.Image, error) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for remaining := int(d / time.Second); remaining > 0; remaining-- {
		frame, err := cam.ReadFrame(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "countdown frame")
		}
		if tick != nil {
			tick(remaining, frame)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	frame, err := cam.ReadFrame(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "final frame")
	}
	return frame, nil
}
