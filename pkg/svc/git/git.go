// Package git provides a typed client for the git subcommands the
// provisioner needs. The binary is invoked as documented rather than
// reimplemented.
package git

import (
	"context"
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/svc/runner"
)

// Tool is the executable name of the version-control tool.
const Tool = "git"

// Client invokes git through a CommandRunner.
type Client struct {
	runner runner.CommandRunner
}

// NewClient creates a git client backed by the given runner.
func NewClient(commandRunner runner.CommandRunner) *Client {
	return &Client{runner: commandRunner}
}

// Init initializes a repository in the current working directory.
func (c *Client) Init(ctx context.Context) error {
	return c.run(ctx, "init")
}

// AddAll stages all changes in the working tree.
func (c *Client) AddAll(ctx context.Context) error {
	return c.run(ctx, "add", ".")
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	return c.run(ctx, "commit", "-m", message)
}

// SubmoduleAdd registers a shallow submodule at the given path.
func (c *Client) SubmoduleAdd(ctx context.Context, url, path string) error {
	return c.run(ctx, "submodule", "add", "--depth=1", url, path)
}

// SubmoduleUpdateInitRecursive fetches and checks out all registered
// submodules, including nested ones.
func (c *Client) SubmoduleUpdateInitRecursive(ctx context.Context) error {
	return c.run(ctx, "submodule", "update", "--init", "--recursive")
}

func (c *Client) run(ctx context.Context, args ...string) error {
	command := runner.Command{Name: Tool, Args: args}

	_, err := c.runner.Run(ctx, command)
	if err != nil {
		return fmt.Errorf("'%s' failed: %w", command.String(), err)
	}

	return nil
}
