package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neonbreaker/internal/core"
	"github.com/vovakirdan/neonbreaker/internal/platform/tui"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle (hold)
  Mouse drag       - Move the paddle under the pointer
  Space            - Start, or restart after game over or win
  Ctrl+S           - Save a text screenshot to ~/.neonbreaker/screenshots
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 7 lives, wide paddle, slow ball
  normal - The classic game
  hard   - 3 lives, narrow paddle, fast ball

Examples:
  neonbreaker play
  neonbreaker play --difficulty easy
  neonbreaker play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.neonbreaker/neonbreaker.log", "Session log file (empty disables logging)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)

	// The TUI owns the terminal, so size it before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(tui.Options{
		Runtime: rt,
		Game:    cfg,
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger opens the session log. On failure, or when path is empty, it
// returns a logger that discards everything so the caller can carry on.
func openLogger(path, level string) (*log.Logger, func(), error) {
	nop := func() {}
	discard := log.New(io.Discard)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return discard, nop, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		return discard, nop, nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, nop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, nop, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonbreaker",
		Level:           lvl,
	})

	closed := false
	closeFn := func() {
		if !closed {
			closed = true
			f.Close() //nolint:errcheck // best-effort close of an append-only log
		}
	}
	return logger, closeFn, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
