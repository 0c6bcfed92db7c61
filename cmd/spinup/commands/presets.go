package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spinup-sh/spinup/internal/output"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available image presets",
	Run: func(_ *cobra.Command, _ []string) {
		output.PrintPresets(os.Stdout)
	},
}
