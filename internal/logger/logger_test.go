package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{ProfileDir: dir}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory missing: %v", err)
	}

	// The logger must be usable right away.
	Warn("test warning", "key", "value")
}

func TestPackageFuncsSafeWithoutInit(t *testing.T) {
	Logger = nil

	// None of these may panic before Init runs.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
