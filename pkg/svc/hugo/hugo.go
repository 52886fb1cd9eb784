// Package hugo provides a typed client for the site generator commands the
// provisioner needs.
package hugo

import (
	"context"
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/svc/runner"
)

// Tool is the executable name of the site generator.
const Tool = "hugo"

// Client invokes hugo through a CommandRunner.
type Client struct {
	runner runner.CommandRunner
}

// NewClient creates a hugo client backed by the given runner.
func NewClient(commandRunner runner.CommandRunner) *Client {
	return &Client{runner: commandRunner}
}

// NewSite scaffolds a new site directory with YAML configuration format.
func (c *Client) NewSite(ctx context.Context, name string) error {
	command := runner.Command{
		Name: Tool,
		Args: []string{"new", "site", name, "--format", "yaml"},
	}

	_, err := c.runner.Run(ctx, command)
	if err != nil {
		return fmt.Errorf("'%s' failed: %w", command.String(), err)
	}

	return nil
}
