package configmanager_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hugoinit/hugoinit/pkg/io/configmanager"
	"github.com/stretchr/testify/require"
)

// Load reads the working directory and environment, so these tests must not
// run in parallel with each other.

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := configmanager.Load()

	require.NoError(t, err)
	require.Equal(t, "PaperMod", settings.Theme.Name)
	require.Equal(
		t,
		"https://github.com/adityatelange/hugo-PaperMod.git",
		settings.Theme.Repository,
	)
	require.Equal(t, "themes/PaperMod", settings.Theme.SubmodulePath)
	require.Equal(t, "main", settings.Git.DefaultBranch)
	require.Equal(t, "origin", settings.Git.RemoteName)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()

	content := "theme:\n  name: Ananke\ngit:\n  defaultBranch: trunk\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hugoinit.yaml"), []byte(content), 0o600))

	chdir(t, dir)

	settings, err := configmanager.Load()

	require.NoError(t, err)
	require.Equal(t, "Ananke", settings.Theme.Name)
	require.Equal(t, "trunk", settings.Git.DefaultBranch)
	// Unset keys keep their defaults.
	require.Equal(t, "origin", settings.Git.RemoteName)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()

	content := "git:\n  remoteName: upstream\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hugoinit.yaml"), []byte(content), 0o600))

	chdir(t, dir)
	t.Setenv("HUGOINIT_GIT_REMOTENAME", "fork")

	settings, err := configmanager.Load()

	require.NoError(t, err)
	require.Equal(t, "fork", settings.Git.RemoteName)
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	original, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(original)
	})
}
