// Package detector checks the local machine for the external toolchain the
// provisioner depends on: elevated privileges and binaries on the execution
// path.
package detector

import "os/exec"

// Detector tests for the presence of external tools.
type Detector struct {
	lookPath func(string) (string, error)
}

// New creates a Detector backed by the real execution path.
func New() *Detector {
	return &Detector{lookPath: exec.LookPath}
}

// NewWithLookPath creates a Detector with a custom path lookup. Used by
// tests to simulate present and missing tools.
func NewWithLookPath(lookPath func(string) (string, error)) *Detector {
	return &Detector{lookPath: lookPath}
}

// IsPresent reports whether the named tool resolves on the execution path.
func (d *Detector) IsPresent(tool string) bool {
	_, err := d.lookPath(tool)

	return err == nil
}

// FirstPresent returns the first of the candidate tools that resolves on
// the execution path, or false if none do.
func (d *Detector) FirstPresent(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if d.IsPresent(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// IsElevated reports whether the current process has the privileges needed
// to install system software. The check is platform-specific.
func (d *Detector) IsElevated() bool {
	return isElevated()
}
