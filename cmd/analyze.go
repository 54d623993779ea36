package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"github.com/kozaktomas/beauty-advisor/internal/logging"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze a photo and print style advice",
	Long: `Classify the face in a photo and print the matching advice.

Landmarks are requested from the face mesh sidecar unless a landmark JSON
file is given with --landmarks ({"landmarks":[{"x":..,"y":..}]} or a bare
array, 468 or 478 points, normalized coordinates).

Examples:
  beauty-advisor analyze selfie.jpg
  beauty-advisor analyze selfie.jpg --landmarks mesh.json --seed 42
  beauty-advisor analyze selfie.jpg --json --overlay mesh.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("landmarks", "", "Landmark JSON file (skips the sidecar)")
	analyzeCmd.Flags().Bool("json", false, "Output as JSON")
	analyzeCmd.Flags().String("overlay", "", "Write the frame with the landmark mesh to this JPEG file")
	addMapperFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	log := logging.New(cfg.Log)

	landmarkPath := mustGetString(cmd, "landmarks")
	jsonOutput := mustGetBool(cmd, "json")
	overlayPath := mustGetString(cmd, "overlay")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	img, err := analysis.DecodeFrame(data)
	if err != nil {
		return err
	}

	store, closeStore, err := openHistory(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Warn("continuing without history")
	}
	defer closeStore()

	svc := newService(cmd, cfg, store, log)

	var report *analysis.Report
	if landmarkPath != "" {
		set, err := readLandmarkFile(landmarkPath)
		if err != nil {
			return err
		}
		report, err = svc.AnalyzeImageWithLandmarks(ctx, img, set, analysis.SourceCLI)
		if err != nil {
			return err
		}
	} else {
		report, err = svc.AnalyzeImage(ctx, img, analysis.SourceCLI)
		if errors.Is(err, analysis.ErrNoFace) {
			return fmt.Errorf("%s: no face detected", args[0])
		}
		if err != nil {
			return err
		}
	}

	if overlayPath != "" {
		if err := writeImageFile(overlayPath, report, true); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("Overlay written to %s\n", overlayPath)
		}
	}

	return printReport(report, jsonOutput)
}

func readLandmarkFile(path string) (*landmarks.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening landmarks: %w", err)
	}
	defer f.Close()

	set, err := landmarks.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
