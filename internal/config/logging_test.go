package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("SKYRAID_LOG_LEVEL", "debug")
	logger, closeFn, err := NewLogger("test", "warn")
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	t.Setenv("SKYRAID_LOG_LEVEL", "loud")
	if _, _, err := NewLogger("test", "info"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyraid.log")
	t.Setenv("SKYRAID_LOG_FILE", path)
	t.Setenv("SKYRAID_LOG_LEVEL", "info")

	logger, closeFn, err := NewLogger("test", "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("phase changed", "to", "playing")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "phase changed") {
		t.Fatalf("log file = %q", data)
	}
}
