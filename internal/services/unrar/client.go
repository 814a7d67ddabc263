// Package unrar wraps the external archive extraction tool.
package unrar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recrate/internal/services"
)

// stderrTailLines bounds how much captured tool output ends up in the error.
const stderrTailLines = 5

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom runner (primarily for tests).
func WithRunner(r services.Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// Client wraps unrar CLI interactions.
type Client struct {
	command string
	runner  services.Runner
}

// New constructs an unrar client.
func New(command string, opts ...Option) (*Client, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, errors.New("unrar command required")
	}
	client := &Client{command: command, runner: services.CommandRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Extract unpacks archivePath into destDir, which must already exist. The
// destination is passed with a trailing separator so the tool creates files
// under it rather than treating it as a file name. A non-zero exit is fatal
// for the job and carries the tail of the tool's stderr.
func (c *Client) Extract(ctx context.Context, archivePath, destDir string) error {
	if strings.TrimSpace(archivePath) == "" {
		return services.Wrap(services.ErrValidation, "unrar", "extract", "archive path required", nil)
	}
	if strings.TrimSpace(destDir) == "" {
		return services.Wrap(services.ErrValidation, "unrar", "extract", "destination directory required", nil)
	}

	args := []string{"x", archivePath, ensureTrailingSlash(destDir)}
	stderr, err := c.runner.Run(ctx, c.command, args)
	if err != nil {
		message := fmt.Sprintf("extract %q", archivePath)
		if tail := services.Tail(stderr, stderrTailLines); tail != "" {
			message = fmt.Sprintf("%s: %s", message, tail)
		}
		return services.Wrap(services.ErrExternalTool, "unrar", "extract", message, err)
	}
	return nil
}

func ensureTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
