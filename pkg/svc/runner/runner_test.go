package runner_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/hugoinit/hugoinit/pkg/svc/runner"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		command  runner.Command
		expected string
	}{
		{
			name:     "NoArgs",
			command:  runner.Command{Name: "git"},
			expected: "git",
		},
		{
			name:     "WithArgs",
			command:  runner.Command{Name: "git", Args: []string{"commit", "-m", "Initial commit"}},
			expected: "git commit -m Initial commit",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, testCase.command.String())
		})
	}
}

func TestOSRunnerCapturesStdout(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out to a POSIX binary")
	}

	osRunner := runner.NewOSRunner()

	result, err := osRunner.Run(context.Background(), runner.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello"},
	})

	require.NoError(t, err)
	require.Equal(t, "hello\n", result.Stdout)
}

func TestOSRunnerWrapsNonZeroExit(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out to a POSIX binary")
	}

	osRunner := runner.NewOSRunner()

	_, err := osRunner.Run(context.Background(), runner.Command{
		Name: "sh",
		Args: []string{"-c", "echo boom >&2; exit 3"},
	})

	require.Error(t, err)
	require.ErrorIs(t, err, runner.ErrCommandFailed)
	require.Contains(t, err.Error(), "exited with code 3")
	require.Contains(t, err.Error(), "boom")
}

func TestOSRunnerReportsMissingBinary(t *testing.T) {
	t.Parallel()

	osRunner := runner.NewOSRunner()

	_, err := osRunner.Run(context.Background(), runner.Command{
		Name: "definitely-not-a-real-binary-hugoinit",
	})

	require.Error(t, err)
	require.NotErrorIs(t, err, runner.ErrCommandFailed)
}

func TestFakeRunnerRecordsAndScripts(t *testing.T) {
	t.Parallel()

	fake := runner.NewFakeRunner()
	fake.ResultFor("git init", runner.Result{Stdout: "Initialized"})

	errSubmodule := errors.New("submodule failed")
	fake.FailOn("git submodule update --init --recursive", errSubmodule)

	result, err := fake.Run(context.Background(), runner.Command{Name: "git", Args: []string{"init"}})
	require.NoError(t, err)
	require.Equal(t, "Initialized", result.Stdout)

	_, err = fake.Run(context.Background(), runner.Command{
		Name: "git",
		Args: []string{"submodule", "update", "--init", "--recursive"},
	})
	require.ErrorIs(t, err, errSubmodule)

	require.Equal(
		t,
		[]string{"git init", "git submodule update --init --recursive"},
		fake.Strings(),
	)
}
