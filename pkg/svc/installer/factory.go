package installer

import (
	"context"
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/svc/runner"
)

// Factory creates installers backed by the detected package manager.
// It holds the shared dependencies required by installers.
type Factory struct {
	manager PackageManager
	runner  runner.CommandRunner
}

// NewFactory creates a new installer factory with the required dependencies.
func NewFactory(manager PackageManager, commandRunner runner.CommandRunner) *Factory {
	return &Factory{
		manager: manager,
		runner:  commandRunner,
	}
}

// ForTool creates an installer for the named tool.
func (f *Factory) ForTool(tool string) Installer {
	return &toolInstaller{
		manager: f.manager,
		runner:  f.runner,
		tool:    tool,
	}
}

// toolInstaller installs a single tool through the package manager.
type toolInstaller struct {
	manager PackageManager
	runner  runner.CommandRunner
	tool    string
}

// Install runs the package manager's install command for the tool.
func (i *toolInstaller) Install(ctx context.Context) error {
	_, err := i.runner.Run(ctx, i.manager.InstallCommand(i.tool))
	if err != nil {
		return fmt.Errorf("failed to install %s via %s: %w", i.tool, i.manager.Name, err)
	}

	return nil
}
