package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "beauty-advisor",
	Short: "Face-shape and skin-undertone analysis with style advice",
	Long: `Beauty Advisor classifies a face from its mesh landmarks and skin color
(undertone, face shape, nose, brows and lips) and maps the result to
contouring, hair, eyewear, earring, makeup and jewellery suggestions.

Landmarks come from a face mesh sidecar (LANDMARK_URL) or a JSON file.
Analyses can optionally be stored in PostgreSQL (DATABASE_URL).`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}
}
