package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catflap/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show the difficulty presets",
	Long: `Print the physics and obstacle parameters of every difficulty preset.
Use --config to inspect a custom YAML file.

Examples:
  catflap presets
  catflap presets --config ./my-catflap.yaml`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %7s  %7s  %6s  %5s  %8s\n", "Name", "Gravity", "Impulse", "Speed", "Gap", "Interval")
	fmt.Printf("  %-8s  %7s  %7s  %6s  %5s  %8s\n", "----", "-------", "-------", "-----", "---", "--------")

	for _, name := range config.PresetNames {
		p, _ := cfg.Preset(name)
		marker := ""
		if name == cfg.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %7.2f  %7.2f  %6.2f  %5.0f  %8d%s\n",
			name, p.Gravity, p.Impulse, p.ObstacleSpeed, p.GapHeight, p.SpawnInterval, marker)
	}

	fmt.Println()
	fmt.Println("Run 'catflap play --difficulty <name>' to play a preset.")
	return nil
}
