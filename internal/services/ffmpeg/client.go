// Package ffmpeg wraps the external transcoder.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recrate/internal/services"
)

const stderrTailLines = 5

// Request describes one FLAC to MP3 transcode.
type Request struct {
	Input        string
	Output       string
	QualityFlag  string
	QualityValue string
}

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

// Client wraps ffmpeg CLI interactions.
type Client struct {
	command string
	runner  services.Runner
}

// New constructs an ffmpeg client.
func New(command string, opts ...Option) (*Client, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, errors.New("ffmpeg command required")
	}
	client := &Client{command: command, runner: services.CommandRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Transcode encodes one audio file to MP3. Metadata streams are kept and any
// embedded image stream (cover art) is copied without re-encoding. Existing
// output files are overwritten, matching plain filesystem overwrite
// semantics. A non-zero exit is fatal for the job and carries the tail of the
// tool's stderr.
func (c *Client) Transcode(ctx context.Context, req Request) error {
	if strings.TrimSpace(req.Input) == "" {
		return services.Wrap(services.ErrValidation, "ffmpeg", "transcode", "input path required", nil)
	}
	if strings.TrimSpace(req.Output) == "" {
		return services.Wrap(services.ErrValidation, "ffmpeg", "transcode", "output path required", nil)
	}
	if strings.TrimSpace(req.QualityFlag) == "" || strings.TrimSpace(req.QualityValue) == "" {
		return services.Wrap(services.ErrValidation, "ffmpeg", "transcode", "quality flag and value required", nil)
	}

	args := []string{
		"-y",
		"-i", req.Input,
		"-codec:a", "libmp3lame",
		req.QualityFlag, req.QualityValue,
		"-map_metadata", "0",
		"-codec:v", "copy",
		req.Output,
	}
	stderr, err := c.runner.Run(ctx, c.command, args)
	if err != nil {
		message := fmt.Sprintf("transcode %q", req.Input)
		if tail := services.Tail(stderr, stderrTailLines); tail != "" {
			message = fmt.Sprintf("%s: %s", message, tail)
		}
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "transcode", message, err)
	}
	return nil
}
