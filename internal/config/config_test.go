package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg.Challenge.Length != nil || cfg.Storage.DB != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[challenge]
length = 100
timezone = "UTC"

[storage]
db = "/tmp/sugarcut.db"

[log]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Challenge.Length == nil || *cfg.Challenge.Length != 100 {
		t.Fatalf("unexpected length: %v", cfg.Challenge.Length)
	}
	if cfg.Storage.DB == nil || *cfg.Storage.DB != "/tmp/sugarcut.db" {
		t.Fatalf("unexpected db: %v", cfg.Storage.DB)
	}
	if NormalizeLogLevel(*cfg.Log.Level) != LogLevelDebug {
		t.Fatalf("unexpected level: %v", *cfg.Log.Level)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"length":   "[challenge]\nlength = 30\n",
		"timezone": "[challenge]\ntimezone = \"Mars/Olympus\"\n",
		"unknown":  "[challenge]\nlenght = 21\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), name+".toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "sugarcut", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "sugarcut", "sugarcut.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, NormalizeLogLevel("WARN"), NormalizeLogFormat("json"))
	logger.Info("hidden")
	logger.Warn("shown", "key", "startDate")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("expected one json record: %v (%s)", err, out)
	}
	if rec["key"] != "startDate" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if NormalizeLogFormat("yaml") != LogFormatText || NormalizeLogLevel("") != LogLevelInfo {
		t.Fatalf("unexpected defaults")
	}
}

func TestRelativeXDGIsIgnored(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "relative/data")
	if got := DefaultDBPath(); got != filepath.Join("/home/tester", ".local", "share", "sugarcut", "sugarcut.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}
