package detector_test

import (
	"errors"
	"testing"

	"github.com/hugoinit/hugoinit/pkg/svc/detector"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("executable file not found in $PATH")

func lookPathWith(present ...string) func(string) (string, error) {
	return func(tool string) (string, error) {
		for _, candidate := range present {
			if candidate == tool {
				return "/usr/local/bin/" + tool, nil
			}
		}

		return "", errNotFound
	}
}

func TestIsPresent(t *testing.T) {
	t.Parallel()

	d := detector.NewWithLookPath(lookPathWith("git", "hugo"))

	require.True(t, d.IsPresent("git"))
	require.True(t, d.IsPresent("hugo"))
	require.False(t, d.IsPresent("choco"))
}

func TestFirstPresent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		present    []string
		candidates []string
		expected   string
		found      bool
	}{
		{
			name:       "FirstCandidate",
			present:    []string{"choco"},
			candidates: []string{"choco", "brew", "apt-get"},
			expected:   "choco",
			found:      true,
		},
		{
			name:       "LaterCandidate",
			present:    []string{"apt-get"},
			candidates: []string{"choco", "brew", "apt-get"},
			expected:   "apt-get",
			found:      true,
		},
		{
			name:       "None",
			present:    nil,
			candidates: []string{"choco", "brew", "apt-get"},
			expected:   "",
			found:      false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			d := detector.NewWithLookPath(lookPathWith(testCase.present...))

			got, found := d.FirstPresent(testCase.candidates)

			require.Equal(t, testCase.found, found)
			require.Equal(t, testCase.expected, got)
		})
	}
}

func TestNewUsesRealLookPath(t *testing.T) {
	t.Parallel()

	d := detector.New()

	// No sane environment has a binary with this name.
	require.False(t, d.IsPresent("definitely-not-a-real-binary-hugoinit"))
}
