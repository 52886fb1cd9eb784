package installer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hugoinit/hugoinit/pkg/svc/detector"
	"github.com/hugoinit/hugoinit/pkg/svc/runner"
)

// ErrPackageManagerNotFound is returned when no supported package manager is
// present. The provisioner cannot install its own installer.
var ErrPackageManagerNotFound = errors.New("no supported package manager found")

// PackageManager describes a supported system package manager.
type PackageManager struct {
	// Name is the executable name used for presence checks and invocation.
	Name string
	// InstallHint tells the user how to install the manager itself.
	InstallHint string
	// autoConfirm appends the manager's non-interactive flag to installs.
	autoConfirm bool
	// packages maps tool names to manager-specific package names. Tools
	// not listed install under their own name.
	packages map[string]string
}

// InstallCommand renders the command that installs the given tool.
func (m PackageManager) InstallCommand(tool string) runner.Command {
	args := []string{"install", m.PackageFor(tool)}
	if m.autoConfirm {
		args = append(args, "-y")
	}

	return runner.Command{Name: m.Name, Args: args}
}

// PackageFor returns the manager-specific package name for a tool.
func (m PackageManager) PackageFor(tool string) string {
	if pkg, ok := m.packages[tool]; ok {
		return pkg
	}

	return tool
}

// Candidates returns the package managers supported on the current platform,
// in preference order.
func Candidates() []PackageManager {
	switch runtime.GOOS {
	case "windows":
		return []PackageManager{chocolatey()}
	case "darwin":
		return []PackageManager{homebrew()}
	default:
		return []PackageManager{aptGet(), homebrew()}
	}
}

// Detect finds the first supported package manager present on the execution
// path. When none is present it returns ErrPackageManagerNotFound with
// installation instructions for the preferred manager.
func Detect(d *detector.Detector) (PackageManager, error) {
	candidates := Candidates()

	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.Name)
	}

	name, found := d.FirstPresent(names)
	if !found {
		return PackageManager{}, fmt.Errorf(
			"%w: %s",
			ErrPackageManagerNotFound,
			candidates[0].InstallHint,
		)
	}

	for _, candidate := range candidates {
		if candidate.Name == name {
			return candidate, nil
		}
	}

	return PackageManager{}, ErrPackageManagerNotFound
}

func chocolatey() PackageManager {
	return PackageManager{
		Name:        "choco",
		InstallHint: "install Chocolatey first, see https://chocolatey.org/install",
		autoConfirm: true,
		// Hugo extended is required for SCSS support in most themes.
		packages: map[string]string{"hugo": "hugo-extended"},
	}
}

func homebrew() PackageManager {
	return PackageManager{
		Name:        "brew",
		InstallHint: "install Homebrew first, see https://brew.sh",
	}
}

func aptGet() PackageManager {
	return PackageManager{
		Name:        "apt-get",
		InstallHint: "apt-get is expected to ship with your distribution",
		autoConfirm: true,
	}
}
