// catflap is a terminal arcade game: steer a falling cat through the gaps
// between treat sticks.
//
// Usage:
//
//	catflap play             - Play in the terminal
//	catflap presets          - Show the difficulty presets
//	catflap sim              - Run the autopilot headless
//
// Global flags:
//
//	--config <path>     - Custom YAML config (default: embedded)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
	"github.com/vovakirdan/catflap/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catflap",
	Short: "Catflap - flap a cat through treat sticks in your terminal",
	Long: `Catflap is a single-screen arcade game. The cat falls under gravity;
each flap kicks it upward. Pass through the gap between two treat sticks
to score a point. Touching a stick or the ground ends the run.

Available commands:
  play     - Play in the terminal
  presets  - Show the difficulty presets
  sim      - Let the autopilot play headless

Examples:
  catflap play
  catflap play --difficulty hard
  catflap presets
  catflap sim --frames 5000 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catflap",
		Level:           level,
	}), nil
}

// newGame loads the configuration and creates a game with difficulty
// preselected. An empty difficulty keeps the config default.
func newGame(difficulty string) (*game.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	g := game.New(cfg)
	if difficulty != "" {
		if _, err := cfg.LookupPreset(difficulty); err != nil {
			return nil, err
		}
		g.Select(difficulty)
	}
	return g, nil
}

// runtimeConfig builds the host settings from the global flags. Zero or
// negative sizes and rates keep the defaults.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW = width
		cfg.ScreenH = height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
