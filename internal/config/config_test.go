package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recrate/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tools.Unrar != "unrar" || cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if cfg.Convert.ArchiveExtension != ".rar" || cfg.Convert.AudioExtension != ".flac" {
		t.Fatalf("unexpected extension defaults: %+v", cfg.Convert)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.DefaultPreset().Name != "MP3-v0" {
		t.Fatalf("unexpected default preset: %q", cfg.DefaultPreset().Name)
	}
	if !filepath.IsAbs(cfg.Paths.InputDir) || !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("expected absolute seeded paths: %+v", cfg.Paths)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "recrate.toml")
	content := `
[paths]
input_dir = "` + tempDir + `/in"
output_dir = "` + tempDir + `/out"

[convert]
archive_extension = "RAR"
default_preset = "mp3-320kbps-cbr"

[logging]
level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("resolved %q exists=%v", resolved, exists)
	}
	if cfg.Paths.InputDir != filepath.Join(tempDir, "in") {
		t.Fatalf("input dir = %q", cfg.Paths.InputDir)
	}
	if cfg.Convert.ArchiveExtension != ".rar" {
		t.Fatalf("expected normalized extension, got %q", cfg.Convert.ArchiveExtension)
	}
	if cfg.DefaultPreset().Name != "MP3-320kbps-CBR" {
		t.Fatalf("default preset = %q", cfg.DefaultPreset().Name)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownPreset(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "recrate.toml")
	content := `
[convert]
default_preset = "OGG-q5"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "default_preset") {
		t.Fatalf("expected preset validation error, got %v", err)
	}
}

func TestLoadRejectsBadLoggingFormat(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "recrate.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging format error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	// The sample must itself be a loadable configuration.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/music")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(tempHome, "music") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
