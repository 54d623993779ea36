package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/capture"
	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/kozaktomas/beauty-advisor/internal/logging"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Take a photo with the webcam and analyze it",
	Long: `Open the webcam, count down, grab a frame and print the analysis.

The device defaults to CAPTURE_DEVICE (/dev/video0) and the countdown to
CAPTURE_COUNTDOWN_SEC (3 seconds). The captured frame is saved with the
landmark mesh drawn on it unless --no-mesh is given.

Examples:
  beauty-advisor capture
  beauty-advisor capture --device /dev/video2 --countdown 5s
  beauty-advisor capture --no-mesh --overlay me.jpg`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().String("device", "", "V4L2 device (overrides CAPTURE_DEVICE)")
	captureCmd.Flags().Duration("countdown", 0, "Countdown before the photo is taken (overrides CAPTURE_COUNTDOWN_SEC)")
	captureCmd.Flags().Bool("mesh", true, "Draw the landmark mesh on the saved frame")
	captureCmd.Flags().Bool("no-mesh", false, "Save the frame without the landmark mesh")
	captureCmd.Flags().String("overlay", "capture.jpg", "Where to save the captured frame (empty to skip)")
	captureCmd.Flags().Bool("json", false, "Output as JSON")
	addMapperFlags(captureCmd)
}

// newCountdownBar shows the countdown, or nil if JSON output.
func newCountdownBar(seconds int, jsonOutput bool) *progressbar.ProgressBar {
	if jsonOutput || seconds <= 0 {
		return nil
	}
	return progressbar.NewOptions(seconds,
		progressbar.OptionSetDescription("Smile!"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(seconds*4),
		progressbar.OptionClearOnFinish(),
	)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logging.New(cfg.Log)

	device := mustGetString(cmd, "device")
	if device == "" {
		device = cfg.Capture.Device
	}
	countdown := mustGetDuration(cmd, "countdown")
	if !cmd.Flags().Changed("countdown") {
		countdown = cfg.Capture.Countdown
	}
	mesh := mustGetBool(cmd, "mesh") && !mustGetBool(cmd, "no-mesh")
	overlayPath := mustGetString(cmd, "overlay")
	jsonOutput := mustGetBool(cmd, "json")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openHistory(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Warn("continuing without history")
	}
	defer closeStore()

	svc := newService(cmd, cfg, store, log)

	frame, err := grabFrame(ctx, device, countdown, jsonOutput)
	if err != nil {
		return err
	}

	report, err := svc.AnalyzeImage(ctx, frame, analysis.SourceCapture)
	if errors.Is(err, analysis.ErrNoFace) {
		fmt.Fprintln(os.Stderr, constants.NoFaceMessage)
		return nil
	}
	if err != nil {
		return err
	}

	if overlayPath != "" {
		if err := writeImageFile(overlayPath, report, mesh); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("Frame saved to %s\n", overlayPath)
		}
	}

	return printReport(report, jsonOutput)
}

// grabFrame opens the device, runs the countdown and returns the last frame.
func grabFrame(ctx context.Context, device string, countdown time.Duration, quiet bool) (image.Image, error) {
	cam, err := capture.Open(device)
	if err != nil {
		return nil, fmt.Errorf("opening camera %s: %w", device, err)
	}
	defer cam.Close()

	bar := newCountdownBar(int(countdown/time.Second), quiet)
	frame, err := capture.Countdown(ctx, cam, countdown, func(remaining int, _ image.Image) {
		if bar != nil {
			bar.Describe(fmt.Sprintf("Smile! %d...", remaining))
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("capturing frame: %w", err)
	}
	return frame, nil
}
