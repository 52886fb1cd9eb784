// Package cmd wires the Cobra command tree for the hugoinit CLI.
package cmd

import (
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/cli/ui/asciiart"
	"github.com/hugoinit/hugoinit/pkg/cli/ui/errorhandler"
	runtime "github.com/hugoinit/hugoinit/pkg/di"
	"github.com/spf13/cobra"
)

// TimingFlagName is the persistent flag that enables per-activity timing
// output.
const TimingFlagName = "timing"

// NewRootCmd creates and returns the root command with version info and
// subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "hugoinit",
		Short:        "hugoinit provisions a deploy-ready Hugo site backed by GitHub Pages",
		Long:         "hugoinit provisions a deploy-ready Hugo site backed by GitHub Pages",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		TimingFlagName,
		false,
		"Show per-activity timing output",
	)

	cmd.AddCommand(NewInitCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// handleRootRunE prints the banner and help when no subcommand is given.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	asciiart.PrintLogo(cmd.OutOrStdout())

	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
