// Package main provides the CLI entrypoint for sugarcut.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sugarcut/internal/calendar"
	"github.com/verte-zerg/sugarcut/internal/challenge"
	"github.com/verte-zerg/sugarcut/internal/config"
	"github.com/verte-zerg/sugarcut/internal/motivation"
	"github.com/verte-zerg/sugarcut/internal/stats"
	"github.com/verte-zerg/sugarcut/internal/store"
	"github.com/verte-zerg/sugarcut/internal/tui"
)

const (
	defaultLength   = int(challenge.Length21)
	defaultLogLevel = "warn"
	defaultWeeks    = 12
)

var version = "dev"

var (
	dbPath    string
	logLevel  string
	logFormat string

	startLength int

	resetLength int
	resetYes    bool

	calendarWeeks int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sugarcut",
		Short:         "Track a 21 or 100 day sugar-free challenge",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(config.LogFormatText), "log format (text, json)")

	rootCmd.AddCommand(newCheckInCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCalendarCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// session holds what every command needs after startup.
type session struct {
	engine *challenge.Engine
	store  *store.SQLite
	logger *slog.Logger
	config config.FileConfig
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("failed to close db", slog.String("error", err.Error()))
	}
}

func openSession(cmd *cobra.Command) (*session, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Storage.DB)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &logFormat, fileCfg.Log.Format)

	logger := config.NewLogger(os.Stderr, config.NormalizeLogLevel(logLevel), config.NormalizeLogFormat(logFormat))
	slog.SetDefault(logger)

	tz := ""
	if fileCfg.Challenge.Timezone != nil {
		tz = *fileCfg.Challenge.Timezone
	}
	loc, err := config.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	length := defaultLength
	if fileCfg.Challenge.Length != nil {
		length = *fileCfg.Challenge.Length
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	engine := challenge.New(st,
		challenge.WithLogger(logger),
		challenge.WithLocation(loc),
		challenge.WithDefaultLength(challenge.Length(length)),
	)
	if err := engine.Load(cmd.Context()); err != nil {
		// The in-memory defaults still work for this run.
		logger.Error("failed to save new challenge", slog.String("error", err.Error()))
	}
	logger.Debug("challenge loaded",
		slog.String("db", dbPath),
		slog.Int("length", int(engine.Length())),
		slog.Int("streak", engine.CurrentStreak()))
	return &session{engine: engine, store: st, logger: logger, config: fileCfg}, nil
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	program := tea.NewProgram(tui.NewModel(s.engine, version), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCheckInCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkin",
		Aliases: []string{"check-in", "done"},
		Short:   "Mark today as sugar-free",
		Args:    cobra.NoArgs,
		RunE:    runCheckInCmd,
	}
}

func runCheckInCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	if s.engine.IsCheckedInToday() {
		_, err := fmt.Fprintf(out, "Already checked in today. Day %d of %d.\n", s.engine.CurrentStreak(), s.engine.Length())
		return err
	}
	if err := s.engine.CheckIn(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	_, err = fmt.Fprintln(out, motivation.Message(s.engine.CurrentStreak()))
	return err
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show streak and progress",
		Args:  cobra.NoArgs,
		RunE:  runStatusCmd,
	}
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return stats.RenderSummary(cmd.OutOrStdout(), stats.BuildReport(s.engine))
}

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the check-in heatmap",
		Args:  cobra.NoArgs,
		RunE:  runCalendarCmd,
	}
	cmd.Flags().IntVar(&calendarWeeks, "weeks", defaultWeeks, "number of weeks to show")
	return cmd
}

func runCalendarCmd(cmd *cobra.Command, _ []string) error {
	if calendarWeeks <= 0 {
		return fmt.Errorf("--weeks must be > 0")
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	weeks := calendar.Build(s.engine.Today(), s.engine.History(), calendarWeeks*7)
	_, err = fmt.Fprintln(out, calendar.Render(weeks, stats.ShouldUseColor(out)))
	return err
}

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a challenge today, keeping past check-ins",
		Args:  cobra.NoArgs,
		RunE:  runStartCmd,
	}
	cmd.Flags().IntVar(&startLength, "length", defaultLength, "challenge length in days (21 or 100)")
	return cmd
}

func runStartCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	length := challenge.Length(startLength)
	if !cmd.Flags().Changed("length") && s.config.Challenge.Length != nil {
		length = challenge.Length(*s.config.Challenge.Length)
	}
	if err := s.engine.Initialize(cmd.Context(), length); err != nil {
		return fmt.Errorf("failed to start challenge: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Started a %d-day challenge today.\n", length)
	return err
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the challenge and clear all check-ins",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().IntVar(&resetLength, "length", 0, "switch to this length (21 or 100); default keeps the current one")
	cmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	length := challenge.Length(resetLength)
	if length != 0 && !length.Valid() {
		return fmt.Errorf("--length: %w", challenge.ErrInvalidLength)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if !resetYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("refusing to reset without a terminal; pass --yes")
		}
		prompt := fmt.Sprintf("Reset your %d-day challenge? You'll lose your current %d-day streak.",
			s.engine.Length(), s.engine.CurrentStreak())
		if length != 0 && length != s.engine.Length() {
			prompt = fmt.Sprintf("Switch to %d-day challenge? This will reset your current progress.", length)
		}
		ok, err := confirm(os.Stdin, cmd.OutOrStdout(), prompt)
		if err != nil {
			return err
		}
		if !ok {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
			return err
		}
	}

	if err := s.engine.Reset(cmd.Context(), length); err != nil {
		return fmt.Errorf("failed to reset challenge: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Challenge reset. %d days to go, starting today.\n", s.engine.Length())
	return err
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", prompt); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sugarcut configuration
# Uncomment a value to enable it. CLI flags override config values.

[challenge]
# length = %d             # Length of a new challenge on first run (21 or 100)
# timezone = "Local"      # IANA zone that decides when a new day starts

[storage]
# db = %q

[log]
# level = %q            # debug, info, warn, error
# format = "text"         # text or json
`,
		defaultLength,
		config.DefaultDBPath(),
		defaultLogLevel,
	)
}
