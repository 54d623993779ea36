package cmd

import (
	"errors"
	"fmt"

	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/kozaktomas/beauty-advisor/internal/logging"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses",
	Long: `List the most recent analyses stored in PostgreSQL.
Requires DATABASE_URL.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", constants.DefaultHistoryLimit, "Maximum number of analyses to show")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	log := logging.New(cfg.Log)

	if !cfg.HistoryEnabled() {
		return errors.New("DATABASE_URL environment variable is required")
	}

	limit := mustGetInt(cmd, "limit")
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}
	limit = min(limit, constants.MaxHistoryLimit)

	store, closeStore, err := openHistory(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	stored, err := store.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}
	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting analyses: %w", err)
	}

	if mustGetBool(cmd, "json") {
		reports := make([]analysis.Report, 0, len(stored))
		for _, a := range stored {
			reports = append(reports, analysis.FromStored(a))
		}
		return outputJSON(map[string]any{"total": total, "analyses": reports})
	}

	if len(stored) == 0 {
		fmt.Println("No analyses stored yet")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %-8s  %-12s  %-8s  %-18s\n", "ID", "CREATED", "SOURCE", "UNDERTONE", "FACE", "NOSE")
	for _, a := range stored {
		c := a.Classification
		fmt.Printf("%-36s  %-16s  %-8s  %-12s  %-8s  %-18s\n",
			a.ID, a.CreatedAt.Local().Format("2006-01-02 15:04"), a.Source,
			c.Undertone, c.FaceShape, c.NoseShape)
	}
	fmt.Printf("\nShowing %d of %d analyses\n", len(stored), total)
	return nil
}
