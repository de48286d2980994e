// snake is Snake Village: a snake game on a wrapping village board, played
// in the terminal or over SSH.
//
// Usage:
//
//	snake                    - Start the main menu
//	snake play               - Start a game straight away
//	snake serve              - Start SSH server for remote play
//	snake scores [mode]      - Show high scores
//	snake themes             - List available themes
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file for terminal play (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/storage"

	// Import themes to register them
	_ "github.com/vovakirdan/snake-village/internal/themes"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Village - guide a snake through a living village",
	Long: `Snake Village is a terminal snake game. Eat food to grow, level up
every five meals, dodge the obstacles and your own tail, and watch the
villagers run away.

Available commands:
  play     - Start a game directly
  menu     - Main menu (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  themes   - List themes
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard --theme neon
  snake serve --ssh :2222
  snake scores medium`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file used while the terminal UI is running")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger at the level chosen by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the --log-file for appending. The terminal belongs to
// the UI, so a file that cannot be opened silences logging instead.
func openLogFile() (io.Writer, func()) {
	path, err := storage.ExpandPath(flagLogFile)
	if err != nil || path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadConfig loads and normalizes the game configuration, logging every
// substituted value.
func loadConfig(logger *log.Logger) config.SnakeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	for _, w := range config.Normalize(&cfg) {
		logger.Warn("config", "warning", w)
	}
	return cfg
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
