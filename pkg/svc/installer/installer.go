// Package installer installs missing external tools through the local
// package manager.
package installer

import "context"

// Installer defines methods for installing a component on the local machine.
type Installer interface {
	// Install installs the component.
	Install(ctx context.Context) error
}
