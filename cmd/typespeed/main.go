// Package main provides the CLI entrypoint for typespeed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typespeed/internal/config"
	"github.com/verte-zerg/typespeed/internal/generator"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/session"
	"github.com/verte-zerg/typespeed/internal/stats"
	"github.com/verte-zerg/typespeed/internal/tui"
	"github.com/verte-zerg/typespeed/internal/wordlist"
)

const (
	defaultWords = generator.DefaultWords
	defaultTick  = session.DefaultTickInterval
)

var (
	testWords   int
	testPools   string
	testTick    time.Duration
	testLogFile string

	scoreReference string
	scoreTyped     string
	scoreElapsed   time.Duration
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typespeed",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	addTestFlags(rootCmd)
	rootCmd.Flags().DurationVar(&testTick, "tick", defaultTick, "live metrics refresh interval")
	rootCmd.Flags().StringVar(&testLogFile, "log-file", "", "write debug logs to this file (bare flag: state dir)")
	rootCmd.Flags().Lookup("log-file").NoOptDefVal = config.DefaultLogPath()

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPoolsCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

func addTestFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&testWords, "words", defaultWords, "words per text")
	cmd.Flags().StringVar(&testPools, "pools", "", "word pools file (blank-line separated)")
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, pools, err := resolveTestConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(testLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := tui.NewModel(cfg, generator.New(), pools, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to start test: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveTestConfig merges the config file under explicitly set flags and
// loads the word pools the test will draw from.
func resolveTestConfig(cmd *cobra.Command) (model.Config, [][]string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	if fileCfg.Test.Pools != nil && !cmd.Flags().Changed("pools") {
		testPools = config.DefaultPoolsPath(*fileCfg.Test.Pools)
	}
	if cmd.Flags().Lookup("tick") != nil {
		applyDurationConfig(cmd, "tick", &testTick, fileCfg.Test.Tick)
	}

	cfg := model.Config{
		Words:        testWords,
		PoolsPath:    testPools,
		TickInterval: testTick,
	}
	pools, err := wordlist.Resolve(cfg.PoolsPath)
	if err != nil {
		return model.Config{}, nil, err
	}
	if err := validateConfig(cfg, pools); err != nil {
		return model.Config{}, nil, err
	}
	return cfg, pools, nil
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "typespeed")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random paragraph",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	addTestFlags(cmd)
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	_, pools, err := resolveTestConfig(cmd)
	if err != nil {
		return err
	}
	text, err := generator.New().Generate(pools, testWords)
	if err != nil {
		return err
	}
	if width := terminalWidth(cmd.OutOrStdout()); width > 0 {
		text = tui.Wrap(text, width)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func newPoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List word pools",
		Args:  cobra.NoArgs,
		RunE:  runPoolsCmd,
	}
	addTestFlags(cmd)
	return cmd
}

func runPoolsCmd(cmd *cobra.Command, _ []string) error {
	_, pools, err := resolveTestConfig(cmd)
	if err != nil {
		return err
	}
	for i, pool := range pools {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d (%d words): %s\n", i+1, len(pool), strings.Join(pool, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score typed text against a reference",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreReference, "reference", "", "reference text")
	cmd.Flags().StringVar(&scoreTyped, "typed", "", "typed text")
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", time.Minute, "time taken")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	if scoreReference == "" {
		return fmt.Errorf("--reference must not be empty")
	}
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	results := stats.Score(scoreReference, scoreTyped, scoreElapsed)
	if err := stats.RenderResults(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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
	if err := writeDefaultConfig(path); err != nil {
		return err
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

// writeDefaultConfig creates the config file from the template unless it exists.
func writeDefaultConfig(path string) error {
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
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typespeed configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# words = %d              # Words per text (at most the smallest pool size)
# pools = "pools.txt"     # Word pools file, relative to this directory; blank lines separate pools
# tick = %q            # Live metrics refresh interval
`,
		defaultWords,
		defaultTick.String(),
	)
}

func validateConfig(cfg model.Config, pools [][]string) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if limit := wordlist.MinPoolSize(pools); cfg.Words > limit {
		return fmt.Errorf("--words must be <= %d (smallest pool size)", limit)
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("--tick must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
