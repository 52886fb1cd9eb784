// Package provisioner runs the one-shot sequence that turns two answers
// into a deploy-ready Hugo site: toolchain verification, input collection,
// site scaffolding, theme registration, file materialization, and three
// fixed commits.
package provisioner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hugoinit/hugoinit/pkg/cli/ui/prompt"
	"github.com/hugoinit/hugoinit/pkg/fsutil"
	"github.com/hugoinit/hugoinit/pkg/fsutil/scaffolder"
	"github.com/hugoinit/hugoinit/pkg/io/configmanager"
	"github.com/hugoinit/hugoinit/pkg/site"
	"github.com/hugoinit/hugoinit/pkg/svc/detector"
	"github.com/hugoinit/hugoinit/pkg/svc/git"
	"github.com/hugoinit/hugoinit/pkg/svc/hugo"
	"github.com/hugoinit/hugoinit/pkg/svc/installer"
	"github.com/hugoinit/hugoinit/pkg/svc/runner"
	"github.com/hugoinit/hugoinit/pkg/utils/notify"
	"github.com/hugoinit/hugoinit/pkg/utils/timer"
	"github.com/mitchellh/go-wordwrap"
)

// Fixed commit messages for the three provisioning commits.
const (
	initialCommitMessage  = "Initial commit"
	configCommitMessage   = "Add site configuration and content pages"
	workflowCommitMessage = "Add footer partial and deploy workflow"
)

const summaryWrapWidth = 80

// Inputs holds the two values collected from the user. Both are transient:
// used for interpolation, then discarded.
type Inputs struct {
	// WebsiteName names the site directory, the repository, and the site
	// title.
	WebsiteName string
	// GithubUsername is interpolated into the GitHub Pages base URL.
	GithubUsername string
}

// Provisioner runs the provisioning sequence. Construct with New.
type Provisioner struct {
	detector   *detector.Detector
	runner     runner.CommandRunner
	prompter   *prompt.Prompter
	settings   configmanager.Settings
	gitClient  *git.Client
	hugoClient *hugo.Client
	scaffolder *scaffolder.Scaffolder
	writer     io.Writer
	timer      timer.Timer
	elevated   func() bool
}

// New creates a Provisioner with the given dependencies. The timer may be
// nil to disable timing output.
func New(
	det *detector.Detector,
	commandRunner runner.CommandRunner,
	prompter *prompt.Prompter,
	settings configmanager.Settings,
	writer io.Writer,
	tmr timer.Timer,
) *Provisioner {
	return &Provisioner{
		detector:   det,
		runner:     commandRunner,
		prompter:   prompter,
		settings:   settings,
		gitClient:  git.NewClient(commandRunner),
		hugoClient: hugo.NewClient(commandRunner),
		scaffolder: scaffolder.NewScaffolder(writer),
		writer:     writer,
		timer:      tmr,
		elevated:   det.IsElevated,
	}
}

// WithElevationCheck overrides the privilege check. Used by tests, which do
// not run elevated.
func (p *Provisioner) WithElevationCheck(check func() bool) *Provisioner {
	p.elevated = check

	return p
}

// Run executes the provisioning sequence. Guards abort before any
// filesystem mutation; once mutation starts there is no rollback, only the
// unconditional working directory restore.
func (p *Provisioner) Run(ctx context.Context) error {
	if p.timer != nil {
		p.timer.Start()
	}

	if !p.elevated() {
		return ErrElevationRequired
	}

	manager, err := p.ensureToolchain(ctx)
	if err != nil {
		return err
	}

	inputs, err := p.collectInputs()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(inputs.WebsiteName)
	if statErr == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, inputs.WebsiteName)
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("failed to check for existing directory: %w", statErr)
	}

	guard, err := fsutil.SaveWorkdir()
	if err != nil {
		return err
	}

	defer func() {
		restoreErr := guard.Restore()
		if restoreErr != nil {
			notify.Warningf(p.writer, "%v", restoreErr)
		}
	}()

	err = p.provision(ctx, inputs, guard)
	if err != nil {
		return err
	}

	p.printSummary(inputs, manager)

	return nil
}

// ensureToolchain verifies the package manager, the site generator, and the
// version-control tool are present, installing the latter two on demand.
// The package manager itself cannot be self-installed.
func (p *Provisioner) ensureToolchain(ctx context.Context) (installer.PackageManager, error) {
	manager, err := installer.Detect(p.detector)
	if err != nil {
		return installer.PackageManager{}, err
	}

	notify.Activityf(p.writer, "using package manager '%s'", manager.Name)

	factory := installer.NewFactory(manager, p.runner)

	for _, tool := range []string{hugo.Tool, git.Tool} {
		if p.detector.IsPresent(tool) {
			continue
		}

		notify.Activityf(p.writer, "installing '%s' via %s", tool, manager.Name)

		err = factory.ForTool(tool).Install(ctx)
		if err != nil {
			return installer.PackageManager{}, err
		}

		if !p.detector.IsPresent(tool) {
			return installer.PackageManager{}, fmt.Errorf("%w: %s", ErrToolUnavailable, tool)
		}
	}

	return manager, nil
}

// collectInputs prompts for the website name and the GitHub username.
// Empty input is a user error and aborts the run.
func (p *Provisioner) collectInputs() (Inputs, error) {
	name, err := p.prompter.Text("Website name")
	if err != nil {
		return Inputs{}, err
	}

	username, err := p.prompter.Text("GitHub username")
	if err != nil {
		return Inputs{}, err
	}

	return Inputs{WebsiteName: name, GithubUsername: username}, nil
}

// provision runs the mutating steps inside the site directory.
func (p *Provisioner) provision(ctx context.Context, inputs Inputs, guard *fsutil.WorkdirGuard) error {
	notify.Activityf(p.writer, "scaffolding site '%s'", inputs.WebsiteName)

	err := p.hugoClient.NewSite(ctx, inputs.WebsiteName)
	if err != nil {
		return err
	}

	// Guard against the generator exiting zero without creating anything.
	info, statErr := os.Stat(inputs.WebsiteName)
	if statErr != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSiteNotCreated, inputs.WebsiteName)
	}

	err = guard.Enter(inputs.WebsiteName)
	if err != nil {
		return err
	}

	err = p.bootstrapRepository(ctx)
	if err != nil {
		return err
	}

	err = p.materializeConfigAndContent(ctx, inputs)
	if err != nil {
		return err
	}

	return p.materializeFooterAndWorkflow(ctx)
}

// bootstrapRepository initializes the repository, commits the scaffolded
// files, and registers the theme submodule.
func (p *Provisioner) bootstrapRepository(ctx context.Context) error {
	err := p.gitClient.Init(ctx)
	if err != nil {
		return err
	}

	err = p.gitClient.AddAll(ctx)
	if err != nil {
		return err
	}

	err = p.gitClient.Commit(ctx, initialCommitMessage)
	if err != nil {
		return err
	}

	notify.Activityf(p.writer, "fetching theme '%s'", p.settings.Theme.Name)

	err = p.gitClient.SubmoduleAdd(ctx, p.settings.Theme.Repository, p.settings.Theme.SubmodulePath)
	if err != nil {
		return err
	}

	return p.gitClient.SubmoduleUpdateInitRecursive(ctx)
}

// materializeConfigAndContent writes hugo.yaml and the content stubs, then
// commits them.
func (p *Provisioner) materializeConfigAndContent(ctx context.Context, inputs Inputs) error {
	cfg := site.NewConfig(inputs.WebsiteName, inputs.GithubUsername, p.settings.Theme.Name)

	err := p.scaffolder.ScaffoldConfig(cfg, ".")
	if err != nil {
		return err
	}

	err = p.scaffolder.ScaffoldContent(".")
	if err != nil {
		return err
	}

	err = p.gitClient.AddAll(ctx)
	if err != nil {
		return err
	}

	return p.gitClient.Commit(ctx, configCommitMessage)
}

// materializeFooterAndWorkflow writes the footer partial and the deploy
// workflow, then commits them.
func (p *Provisioner) materializeFooterAndWorkflow(ctx context.Context) error {
	err := p.scaffolder.ScaffoldFooter(".")
	if err != nil {
		return err
	}

	workflow := site.NewDeployWorkflow(p.settings.Git.DefaultBranch)

	err = p.scaffolder.ScaffoldWorkflow(workflow, ".")
	if err != nil {
		return err
	}

	err = p.gitClient.AddAll(ctx)
	if err != nil {
		return err
	}

	return p.gitClient.Commit(ctx, workflowCommitMessage)
}

// printSummary prints the next-step instructions.
func (p *Provisioner) printSummary(inputs Inputs, manager installer.PackageManager) {
	notify.SuccessWithTimerf(p.writer, p.timer, "site '%s' is ready", inputs.WebsiteName)

	remote := fmt.Sprintf(
		"https://github.com/%s/%s.git",
		inputs.GithubUsername,
		inputs.WebsiteName,
	)

	summary := fmt.Sprintf(
		"Next steps:\n"+
			"1. Create an empty GitHub repository named '%s'.\n"+
			"2. cd %s\n"+
			"3. git remote add %s %s\n"+
			"4. git branch -M %s\n"+
			"5. git push -u %s %s\n"+
			"6. Preview locally with 'hugo server -D'.\n"+
			"Once pushed, the workflow deploys the site to %s (tools installed via %s).",
		inputs.WebsiteName,
		inputs.WebsiteName,
		p.settings.Git.RemoteName,
		remote,
		p.settings.Git.DefaultBranch,
		p.settings.Git.RemoteName,
		p.settings.Git.DefaultBranch,
		site.BaseURL(inputs.GithubUsername, inputs.WebsiteName),
		manager.Name,
	)

	notify.Infof(p.writer, "%s", wordwrap.WrapString(summary, summaryWrapWidth))
}
