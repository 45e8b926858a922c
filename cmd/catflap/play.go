package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catflap/internal/platform/tui"
	"github.com/vovakirdan/catflap/internal/storage"
)

var (
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W   - Flap (starts the run on the start screen)
  Enter        - Start
  P/Esc        - Pause / resume
  R            - Press the reset button (after game over)
  Mouse click  - Flap, or press the reset button
  1/2/3        - Select easy / medium / hard
  Left/Right   - Cycle difficulty
  D            - Toggle hitbox overlay
  Q/Ctrl+C     - Quit

A difficulty change takes effect when the next run starts.

Examples:
  catflap play
  catflap play --difficulty easy
  catflap play --seed 42 --debug
  catflap play --config ./my-catflap.yaml --log-file catflap.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the hitbox overlay on")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	g, err := newGame(flagDifficulty)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Session journal; the game still works without it
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session journal", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	model := tui.NewModel(g, store, logger, cfg)
	if flagDebug {
		g.SetDebug(true)
	}
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		printJournal(store)
	}
	return nil
}

// printJournal prints the runs finished this session.
func printJournal(store *storage.Store) {
	runs, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Print(tui.RenderJournal(runs, stats))
}
