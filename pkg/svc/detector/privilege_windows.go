//go:build windows

package detector

import "os"

// isElevated reports whether the process runs with Administrator rights.
// Opening the raw physical drive succeeds only for elevated processes.
func isElevated() bool {
	handle, err := os.Open(`\\.\PHYSICALDRIVE0`)
	if err != nil {
		return false
	}

	_ = handle.Close()

	return true
}
