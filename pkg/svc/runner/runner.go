// Package runner provides a stub-friendly abstraction for invoking external
// commands. Every shell-out in the provisioner goes through [CommandRunner]
// so tests can substitute [FakeRunner] for the real executor.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommandFailed is returned when a command runs but exits non-zero.
var ErrCommandFailed = errors.New("command failed")

// Command describes a single external command invocation.
type Command struct {
	// Name is the executable name, resolved via the execution path.
	Name string
	// Args are the command arguments.
	Args []string
	// Dir is the working directory. Empty means the process working directory.
	Dir string
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the captured output of a completed command.
type Result struct {
	Stdout string
	Stderr string
}

// CommandRunner executes external commands.
type CommandRunner interface {
	// Run executes the command and waits for completion. A non-zero exit
	// is returned as an error wrapping ErrCommandFailed, with the
	// command's stderr included in the message.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// OSRunner is the production CommandRunner backed by os/exec.
type OSRunner struct{}

// NewOSRunner creates a new OSRunner.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run executes the command, capturing stdout and stderr.
func (r *OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	var stdout, stderr bytes.Buffer

	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	err := execCmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, fmt.Errorf(
				"%w: '%s' exited with code %d: %s",
				ErrCommandFailed,
				cmd.String(),
				exitErr.ExitCode(),
				strings.TrimSpace(result.Stderr),
			)
		}

		return result, fmt.Errorf("failed to start '%s': %w", cmd.String(), err)
	}

	return result, nil
}
