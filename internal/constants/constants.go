// Package constants provides shared constants used across the codebase.
package constants

import "time"

// Frame constants
const (
	// FrameWidth is the width every frame is scaled to before analysis.
	// Brow and lip thresholds are calibrated for this size.
	FrameWidth = 640

	// FrameHeight is the height every frame is scaled to before analysis.
	FrameHeight = 480

	// OverlayJPEGQuality is the JPEG quality for rendered mesh overlays
	OverlayJPEGQuality = 90

	// MaxDecodedPixels caps width*height of an uploaded image before it is
	// decoded (about 200 MB as RGBA).
	MaxDecodedPixels = 50_000_000
)

// Capture constants
const (
	// DefaultCountdown is the pause before the webcam grabs the final frame
	DefaultCountdown = 3 * time.Second

	// DefaultCaptureDevice is the V4L2 device used when none is configured
	DefaultCaptureDevice = "/dev/video0"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of stored analyses listed
	DefaultHistoryLimit = 20

	// MaxHistoryLimit caps history page sizes
	MaxHistoryLimit = 200
)

// NoFaceMessage is shown when the landmark provider finds no face.
const NoFaceMessage = "Couldn't detect a face. Please try again with better lighting."
