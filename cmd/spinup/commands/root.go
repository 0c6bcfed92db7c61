// Package commands wires the CLI surface. The root command is the launcher
// itself; flag parsing is deliberately lenient, so cobra's own parser is
// bypassed and raw tokens go straight to the resolver.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spinup-sh/spinup/internal/compute"
	"github.com/spinup-sh/spinup/internal/config"
	"github.com/spinup-sh/spinup/internal/launcher"
	"github.com/spinup-sh/spinup/internal/output"
)

func init() {
	RootCmd.AddCommand(presetsCmd)
	RootCmd.AddCommand(versionCmd)
}

// RootCmd represents the base command. Invoked without a subcommand it
// resolves the configuration and provisions a VM.
var RootCmd = &cobra.Command{
	Use:   "spinup [--key=value]...",
	Short: "Spin up a single Azure VM with sensible defaults",
	Long: `spinup provisions a single Azure virtual machine through the Azure CLI,
filling in sensible defaults for everything you do not specify.

Recognized keys: location, name, size, image, resourceGroup, username,
password. Unrecognized keys and malformed tokens are ignored. The image key
accepts either a preset name (see 'spinup presets') or a raw Azure image URN.

Examples:
  spinup
  spinup --image=ubuntu --location=westeurope
  spinup --image=Canonical:ubuntu-24_04-lts:server:latest --size=Standard_B2s`,
	// Tokens are handed to the lenient resolver untouched; bare words must
	// not be mistaken for subcommands
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				return cmd.Help()
			}
		}
		return runLaunch(cmd.Context(), args)
	},
}

// Execute adds all child commands to the root command and runs it
func Execute() error {
	return RootCmd.Execute()
}

func runLaunch(ctx context.Context, tokens []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Resolve(tokens, config.DefaultsFromEnv())
	if err != nil {
		return err
	}

	l := launcher.New(compute.NewProvider(), os.Stdout)

	fmt.Println("🔎 Checking Azure CLI session...")
	if _, err := l.CheckPrerequisites(ctx); err != nil {
		return err
	}

	output.PrintPlan(os.Stdout, cfg)

	info, err := l.Launch(ctx, cfg)
	if err != nil {
		return err
	}

	output.PrintResult(os.Stdout, cfg, info)
	return nil
}
