package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/astralhpi/ticktick-mcp/internal/config"
	"github.com/astralhpi/ticktick-mcp/internal/environ"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func TestRunWithoutSettingsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	logger, logs := newObservedLogger()

	if code := run([]string{"--dotenv-dir", dir}, environ.NewMemory(nil), logger); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory to be created: %v", err)
	}
	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 0 {
		t.Fatalf("expected no errors, got %d", got)
	}
	ready := logs.FilterMessage("configuration ready").All()
	if len(ready) != 1 {
		t.Fatalf("expected ready log, got %d", len(ready))
	}
	if loaded := ready[0].ContextMap()["settings_loaded"]; loaded != false {
		t.Fatalf("expected settings_loaded=false, got %v", loaded)
	}
}

func TestRunLoadsSettingsIntoEnvironment(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFileName), []byte("TICKTICK_CLIENT_ID=abc\n"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	env := environ.NewMemory(map[string]string{config.EnvClientID: "old"})
	logger, _ := newObservedLogger()

	if code := run([]string{"--dotenv-dir=" + dir}, env, logger); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if got, _ := env.Lookup(config.EnvClientID); got != "abc" {
		t.Fatalf("expected client id abc, got %q", got)
	}
}

func TestRunFailures(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	malformed := t.TempDir()
	if err := os.WriteFile(filepath.Join(malformed, config.SettingsFileName), []byte("not an assignment\n"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	testCases := []struct {
		name string
		args []string
	}{
		{name: "directory cannot be created", args: []string{"--dotenv-dir", filepath.Join(blocker, "sub")}},
		{name: "malformed settings file", args: []string{"--dotenv-dir", malformed}},
		{name: "unknown flag", args: []string{"--port", "8080"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, logs := newObservedLogger()

			if code := run(tc.args, environ.NewMemory(nil), logger); code == 0 {
				t.Fatalf("expected non-zero exit code")
			}
			if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
				t.Fatalf("expected one error entry, got %d", got)
			}
		})
	}
}
