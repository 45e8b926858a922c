package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catflap/internal/core"
	"github.com/vovakirdan/catflap/internal/game"
)

var (
	flagSimDifficulty string
	flagSimFrames     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headless",
	Long: `Run one game with the built-in autopilot and no terminal UI, then
print the outcome. With a fixed --seed the result is reproducible.

Examples:
  catflap sim
  catflap sim --difficulty hard --seed 7
  catflap sim --frames 20000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 10000, "Maximum frames to simulate")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimFrames <= 0 {
		return errors.New("--frames must be positive")
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	g, err := newGame(flagSimDifficulty)
	if err != nil {
		return err
	}

	cfg := runtimeConfig(0, 0)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)
	logger.Info("simulating", "difficulty", g.State().Selected, "seed", cfg.Seed, "frames", flagSimFrames)

	sum := game.RunFrames(g, flagSimFrames, game.Autopilot{})
	for _, e := range sum.Events {
		switch e.Kind {
		case core.EventScored:
			logger.Debug("scored", "score", e.Score, "frame", e.Frame)
		case core.EventCollided, core.EventGroundHit:
			logger.Info("run ended", "cause", e.Kind, "score", e.Score, "frame", e.Frame)
		}
	}

	outcome := "still running"
	if sum.Phase == core.PhaseGameOver {
		outcome = "game over"
	}

	fmt.Printf("Difficulty: %s\n", sum.Difficulty)
	fmt.Printf("Seed:       %d\n", cfg.Seed)
	fmt.Printf("Frames:     %d\n", sum.RunFrames)
	fmt.Printf("Score:      %d\n", sum.Score)
	fmt.Printf("Outcome:    %s\n", outcome)
	return nil
}
