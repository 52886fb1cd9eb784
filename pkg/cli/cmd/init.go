package cmd

import (
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/cli/ui/prompt"
	runtime "github.com/hugoinit/hugoinit/pkg/di"
	"github.com/hugoinit/hugoinit/pkg/svc/provisioner"
	"github.com/hugoinit/hugoinit/pkg/utils/notify"
	"github.com/hugoinit/hugoinit/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command, which runs the full provisioning
// sequence.
func NewInitCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new Hugo site wired for GitHub Pages deployment",
		Long: "Create a new Hugo site with the PaperMod theme, content stubs, " +
			"and a GitHub Actions workflow that deploys to GitHub Pages on every " +
			"push to the default branch.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handleInitRunE(cmd, runtimeContainer)
		},
		SilenceUsage: true,
	}
}

func handleInitRunE(cmd *cobra.Command, runtimeContainer *runtime.Runtime) error {
	injector := runtimeContainer.Injector()

	det, err := runtime.ResolveDetector(injector)
	if err != nil {
		return err
	}

	cmdRunner, err := runtime.ResolveCommandRunner(injector)
	if err != nil {
		return err
	}

	settings, err := runtime.ResolveSettings(injector)
	if err != nil {
		return err
	}

	tmr, err := resolveTimer(cmd, injector)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !prompt.IsInteractive() {
		notify.Warningf(out, "stdin is not a terminal, prompts may not behave as expected")
	}

	prompter := prompt.New(cmd.InOrStdin(), out)

	prov := provisioner.New(det, cmdRunner, prompter, settings, out, tmr)

	err = prov.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("provisioning failed: %w", err)
	}

	return nil
}

// resolveTimer returns the shared timer when timing output is requested, or
// nil to disable it.
func resolveTimer(cmd *cobra.Command, injector runtime.Injector) (timer.Timer, error) {
	timing, err := cmd.Flags().GetBool(TimingFlagName)
	if err != nil || !timing {
		return nil, nil //nolint:nilerr // A missing flag means timing is off.
	}

	return runtime.ResolveTimer(injector)
}
