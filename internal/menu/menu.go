// Package menu implements the interactive line-based menu that owns the
// session configuration.
//
// The controller is a small state machine: it loops on the main menu,
// dispatches one action per choice, and returns only on the exit choice or
// when input ends. Invalid choices re-display the menu with an error and
// there is no retry limit.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"recrate/internal/config"
	"recrate/internal/logging"
	"recrate/internal/pipeline"
	"recrate/internal/preset"
)

// BatchRunner is the conversion entry point invoked by the Run action.
type BatchRunner interface {
	Run(ctx context.Context, session pipeline.Session) (pipeline.Stats, error)
}

// Controller drives the interactive session.
type Controller struct {
	session pipeline.Session
	runner  BatchRunner
	scan    *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// New constructs a menu controller seeded with the given session values.
func New(session pipeline.Session, runner BatchRunner, in io.Reader, out io.Writer, logger *slog.Logger) *Controller {
	return &Controller{
		session: session,
		runner:  runner,
		scan:    bufio.NewScanner(in),
		out:     out,
		logger:  logging.NewComponentLogger(logger, "menu"),
	}
}

// Session returns the current session configuration.
func (c *Controller) Session() pipeline.Session {
	return c.session
}

// Run loops on the main menu until the user exits or input ends. A cancelled
// context ends the loop after the current action.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			c.setInputDir()
		case "2":
			c.setOutputDir()
		case "3":
			c.setPreset()
		case "4":
			c.runBatch(ctx)
		case "5":
			fmt.Fprintln(c.out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
	}
}

func (c *Controller) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Main Menu ---")
	fmt.Fprintf(c.out, "1. Set Input Directory (Current: %s)\n", c.session.InputDir)
	fmt.Fprintf(c.out, "2. Set Output Directory (Current: %s)\n", c.session.OutputDir)
	fmt.Fprintf(c.out, "3. Configure MP3 Encoding (Current: %s)\n", c.session.Preset.Name)
	fmt.Fprintln(c.out, "4. Start Conversion")
	fmt.Fprintln(c.out, "5. Exit")
	fmt.Fprint(c.out, "Enter your choice: ")
}

func (c *Controller) readLine() (string, bool) {
	if !c.scan.Scan() {
		return "", false
	}
	return c.scan.Text(), true
}

// setInputDir accepts the new path only if it designates an existing
// directory; otherwise the session is unchanged.
func (c *Controller) setInputDir() {
	fmt.Fprint(c.out, "Enter the path to the input directory: ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	path := expand(strings.TrimSpace(line))
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		fmt.Fprintln(c.out, "Invalid directory path. Please try again.")
		return
	}
	c.session.InputDir = path
}

// setOutputDir accepts any string unconditionally; the directory is created
// when a batch runs, so it does not have to exist yet.
func (c *Controller) setOutputDir() {
	fmt.Fprint(c.out, "Enter the path to the output directory: ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	c.session.OutputDir = expand(strings.TrimSpace(line))
}

func (c *Controller) setPreset() {
	selected, err := preset.Select(c.scan, c.out)
	if err != nil {
		// Input ended mid-selection; keep the current preset. The outer
		// loop will observe the same EOF and exit.
		return
	}
	c.session.Preset = selected
}

func (c *Controller) runBatch(ctx context.Context) {
	fmt.Fprintln(c.out)
	stats, err := c.runner.Run(ctx, c.session)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(c.out, "Conversion interrupted.")
			return
		}
		fmt.Fprintf(c.out, "Batch failed: %v\n", err)
		return
	}
	if stats.Archives == 0 {
		fmt.Fprintf(c.out, "No archives found in %s.\n", c.session.InputDir)
		return
	}
	fmt.Fprintf(c.out, "Batch complete: %d archives, %d tracks converted, %d skipped, %d failed.\n",
		stats.Archives, stats.Converted, stats.Skipped, stats.Failed)
}

// expand applies home-directory expansion on a best-effort basis. On failure
// the raw value is kept so output paths remain accept-anything.
func expand(path string) string {
	if path == "" {
		return path
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
