package cmd

import (
	"fmt"
	"runtime"

	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"github.com/spf13/cobra"
)

// Build metadata variables, set by -ldflags at compile time.
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beauty-advisor %s\n", Version)
		fmt.Printf("  Commit: %s\n", CommitSHA)
		fmt.Printf("  Built:  %s (%s)\n", BuildDate, runtime.Version())
		fmt.Printf("  Mesh:   %d or %d landmarks\n", landmarks.MeshSize, landmarks.RefinedMeshSize)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
