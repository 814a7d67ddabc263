// Package deps checks the availability of the external binaries recrate
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"recrate/internal/config"
)

// Requirement defines an external dependency recrate relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the tool set for the given configuration.
func Requirements(cfg *config.Config) []Requirement {
	unrar := defaultCommand(cfg, func(c *config.Config) string { return c.Tools.Unrar }, "unrar")
	ffmpeg := defaultCommand(cfg, func(c *config.Config) string { return c.Tools.FFmpeg }, "ffmpeg")
	return []Requirement{
		{Name: "unrar", Command: unrar, Description: "Extracts RAR archives"},
		{Name: "ffmpeg", Command: ffmpeg, Description: "Transcodes FLAC to MP3"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing filters statuses down to unavailable required tools.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status)
		}
	}
	return missing
}

func defaultCommand(cfg *config.Config, pick func(*config.Config) string, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if cmd := strings.TrimSpace(pick(cfg)); cmd != "" {
		return cmd
	}
	return fallback
}
