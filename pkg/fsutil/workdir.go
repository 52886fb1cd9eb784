package fsutil

import (
	"fmt"
	"os"
)

// WorkdirGuard captures the process working directory so it can be restored
// after a sequence of directory changes, whether the sequence succeeds or
// fails.
//
// Usage:
//
//	guard, err := fsutil.SaveWorkdir()
//	if err != nil { ... }
//	defer guard.Restore()
type WorkdirGuard struct {
	original string
}

// SaveWorkdir records the current working directory and returns a guard that
// restores it.
func SaveWorkdir() (*WorkdirGuard, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current working directory: %w", err)
	}

	return &WorkdirGuard{original: dir}, nil
}

// Original returns the directory that was active when the guard was created.
func (g *WorkdirGuard) Original() string {
	return g.original
}

// Enter changes the process working directory to dir.
func (g *WorkdirGuard) Enter(dir string) error {
	err := os.Chdir(dir)
	if err != nil {
		return fmt.Errorf("failed to change into directory %s: %w", dir, err)
	}

	return nil
}

// Restore changes back to the directory captured at guard creation. It is
// safe to call from a defer; restore failures are returned so callers that
// care can report them, but a failed run's outcome is never overridden by
// the restore result.
func (g *WorkdirGuard) Restore() error {
	err := os.Chdir(g.original)
	if err != nil {
		return fmt.Errorf("failed to restore working directory %s: %w", g.original, err)
	}

	return nil
}
