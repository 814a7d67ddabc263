package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recrate/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleLoggerMirrorsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "recrate.log")
	logger, err := logging.New(logging.Options{
		Level:    "debug",
		Format:   "console",
		FilePath: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	component := logging.NewComponentLogger(logger, "pipeline")
	component.Info("batch started", logging.String("run_id", "abc"), logging.Int("archives", 3))

	content := readLog(t, logPath)
	for _, want := range []string{"INFO", "pipeline: batch started", "run_id=abc", "archives=3"} {
		if !strings.Contains(content, want) {
			t.Fatalf("log %q missing %q", content, want)
		}
	}
}

func TestConsoleLoggerQuotesValuesWithSpaces(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "recrate.log")
	logger, err := logging.New(logging.Options{Format: "console", FilePath: logPath})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("archive failed", logging.String("archive", "Artist - Album.rar"))

	if !strings.Contains(readLog(t, logPath), `archive="Artist - Album.rar"`) {
		t.Fatalf("expected quoted value, got %q", readLog(t, logPath))
	}
}

func TestJSONLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "recrate.log")
	logger, err := logging.New(logging.Options{Format: "json", FilePath: logPath})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hello", logging.String("k", "v"))

	content := readLog(t, logPath)
	for _, want := range []string{`"msg":"hello"`, `"level":"info"`, `"k":"v"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("log %q missing %q", content, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "recrate.log")
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", FilePath: logPath})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("quiet")
	logger.Warn("loud")

	content := readLog(t, logPath)
	if strings.Contains(content, "quiet") {
		t.Fatal("info line logged at warn level")
	}
	if !strings.Contains(content, "loud") {
		t.Fatal("warn line missing")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("discarded", logging.Error(nil))
	logger = logging.NewComponentLogger(nil, "menu")
	logger.Error("also discarded")
}
