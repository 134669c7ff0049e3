package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/config"
	"github.com/xolan/tlreport/internal/service"
)

const sampleSessions = `[
  {"start": "2024-01-15T09:00:00Z", "end": "2024-01-15T11:00:00Z", "note": "1x meeting"},
  {"start": "2024-01-15T11:00:00Z", "end": "2024-01-15T12:00:00Z", "note": "0.5x^ more"},
  {"start": "2024-01-15T13:00:00Z", "end": "2024-01-15T15:00:00Z", "note": "0 coding"}
]`

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.HourlyRate = 10
	cfg.Timezone = "UTC"

	services := service.NewServicesWithConfig(filepath.Join(tmpDir, "config.toml"), cfg, config.LoadInfo{})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
	}

	return deps, stdout, stderr, &exitCode
}

// setupBrokenConfigDeps points the config file into a directory that does not exist
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	configPath := filepath.Join(t.TempDir(), "missing", "dir", "config.toml")
	deps.Services = service.NewServicesWithConfig(configPath, config.DefaultConfig(), config.LoadInfo{})
	return deps, stdout, stderr, exitCode
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
