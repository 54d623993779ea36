package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/kozaktomas/beauty-advisor/internal/database"
	"github.com/kozaktomas/beauty-advisor/internal/database/postgres"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"github.com/kozaktomas/beauty-advisor/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// outputJSON writes data to stdout as indented JSON.
func outputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// addMapperFlags registers --seed on commands that sample highlights.
func addMapperFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Seed for highlight sampling (random when unset)")
}

// newMapper returns a seeded mapper when --seed was given.
func newMapper(cmd *cobra.Command) *advice.Mapper {
	if cmd.Flags().Changed("seed") {
		return advice.NewSeededMapper(nil, mustGetUint64(cmd, "seed"))
	}
	return advice.NewMapper(nil, nil)
}

// openHistory connects to the history database when DATABASE_URL is set.
// The returned store is nil when history is disabled.
func openHistory(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (database.AnalysisWriter, func(), error) {
	if !cfg.HistoryEnabled() {
		return nil, func() {}, nil
	}

	pool, err := postgres.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open history database: %w", err)
	}
	log.Debug("analysis history enabled")

	closeFn := func() {
		if err := pool.Close(); err != nil {
			log.WithError(err).Warn("closing history database")
		}
	}
	return postgres.NewAnalysisRepository(pool), closeFn, nil
}

// newService wires the sidecar client, mapper and optional history store.
func newService(cmd *cobra.Command, cfg *config.Config, store database.AnalysisWriter, log logrus.FieldLogger) *analysis.Service {
	provider := landmarks.NewClient(cfg.Landmarks.URL, cfg.Landmarks.Timeout)
	log.WithField("url", provider.BaseURL()).Debug("using landmark sidecar")
	return analysis.NewService(provider, newMapper(cmd), store, log)
}

// printReport writes a report as JSON or as text panels.
func printReport(r *analysis.Report, jsonOutput bool) error {
	if jsonOutput {
		return outputJSON(r)
	}
	fmt.Printf("Analysis %s\n\n", r.ID)
	return render.WriteReport(os.Stdout, r.Classification, r.Advice)
}

// writeImageFile writes the frame to path, with the mesh drawn on it when
// mesh is true.
func writeImageFile(path string, r *analysis.Report, mesh bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	set := r.Set
	if !mesh {
		set = nil
	}
	if err := render.WriteOverlayJPEG(f, r.Frame, set); err != nil {
		return err
	}
	return f.Close()
}
