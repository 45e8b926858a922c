package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/catflap.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It mirrors the embedded YAML
// and is used when that document cannot be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:        320,
			Height:       480,
			GroundHeight: 80,
		},
		Actor: Actor{
			X:                50,
			Y:                150,
			Width:            40,
			Height:           40,
			MaxFallSpeed:     5,
			MaxRotation:      math.Pi / 4,
			RotationDownRate: 0.08,
			RotationUpRate:   0.1,
			HitboxScale:      0.5,
			CeilingRebound:   0.5,
		},
		Obstacles: Obstacles{
			Width:       52,
			BlockHeight: 400,
			BaseOffset:  -150,
		},
		ResetButton: Button{
			OffsetX: -60,
			OffsetY: 30,
			Width:   120,
			Height:  40,
		},
		Effects: Effects{
			FlashRadius:  20,
			FlashFade:    0.05,
			FlashGrowth:  1,
			CloudDrift:   0.3,
			TonguePeriod: 60,
		},
		DefaultDifficulty: Medium,
		Presets: map[string]Profile{
			Easy: {
				Gravity:       0.12,
				Impulse:       3.2,
				ObstacleSpeed: 1.0,
				GapHeight:     170,
				SpawnInterval: 180,
			},
			Medium: {
				Gravity:       0.15,
				Impulse:       3.5,
				ObstacleSpeed: 1.2,
				GapHeight:     150,
				SpawnInterval: 150,
			},
			Hard: {
				Gravity:       0.18,
				Impulse:       4.0,
				ObstacleSpeed: 1.5,
				GapHeight:     130,
				SpawnInterval: 120,
			},
		},
	}
}
