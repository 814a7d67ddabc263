package deps_test

import (
	"testing"

	"recrate/internal/config"
	"recrate/internal/deps"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "missing-tool", Command: "recrate-test-no-such-binary"},
		{Name: "unconfigured", Command: "  "},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected status for unconfigured command: %+v", statuses[1])
	}
}

func TestRequirementsUseConfiguredCommands(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Unrar = "/opt/rar/unrar"
	cfg.Tools.FFmpeg = ""

	reqs := deps.Requirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/rar/unrar" {
		t.Fatalf("unrar command = %q", reqs[0].Command)
	}
	if reqs[1].Command != "ffmpeg" {
		t.Fatalf("expected fallback ffmpeg command, got %q", reqs[1].Command)
	}
}

func TestMissingFiltersRequiredOnly(t *testing.T) {
	statuses := []deps.Status{
		{Name: "a", Available: true},
		{Name: "b", Available: false},
		{Name: "c", Available: false, Optional: true},
	}
	missing := deps.Missing(statuses)
	if len(missing) != 1 || missing[0].Name != "b" {
		t.Fatalf("unexpected missing set: %+v", missing)
	}
}
