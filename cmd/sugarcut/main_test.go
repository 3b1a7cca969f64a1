package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/sugarcut/internal/config"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("sugarcut %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")
	return filepath.Join(dir, "test.db")
}

func TestCheckInThenStatus(t *testing.T) {
	db := setupEnv(t)

	out := runCLI(t, "--db", db, "checkin")
	if !strings.Contains(out, "Day 1 complete") {
		t.Fatalf("unexpected checkin output: %q", out)
	}
	out = runCLI(t, "--db", db, "checkin")
	if !strings.Contains(out, "Already checked in today") {
		t.Fatalf("expected repeat checkin notice: %q", out)
	}

	out = runCLI(t, "--db", db, "status")
	for _, want := range []string{"Day 1", "21 Day Challenge", "4.8% Complete", "Today: done"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status missing %q:\n%s", want, out)
		}
	}
}

func TestResetWithYesSwitchesLength(t *testing.T) {
	db := setupEnv(t)

	runCLI(t, "--db", db, "checkin")
	out := runCLI(t, "--db", db, "reset", "--length", "100", "--yes")
	if !strings.Contains(out, "100 days to go") {
		t.Fatalf("unexpected reset output: %q", out)
	}

	out = runCLI(t, "--db", db, "status")
	if !strings.Contains(out, "Day 0 · 100 Day Challenge") {
		t.Fatalf("expected a fresh 100 day challenge:\n%s", out)
	}
}

func TestCalendarRejectsZeroWeeks(t *testing.T) {
	db := setupEnv(t)
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", db, "calendar", "--weeks", "0"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected an error for --weeks 0")
	}
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(input), &out, "Reset?")
		if err != nil {
			t.Fatalf("confirm(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("confirm(%q) = %v, want %v", input, got, want)
		}
		if !strings.Contains(out.String(), "Reset? [y/N]") {
			t.Fatalf("missing prompt: %q", out.String())
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Challenge.Length != nil || cfg.Storage.DB != nil || cfg.Log.Level != nil {
		t.Fatalf("expected every template value to be commented out: %+v", cfg)
	}
}
