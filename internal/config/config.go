// Package config provides YAML-based world geometry and difficulty presets
// for the game, plus the preset selector used before a run starts.
package config

import (
	"errors"
	"fmt"
)

// Preset names, in display order.
const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

// PresetNames lists every preset in display order.
var PresetNames = []string{Easy, Medium, Hard}

// ErrUnknownPreset is returned when a preset name is not one of PresetNames.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Profile is an immutable bundle of physics and spawn constants.
// It is passed by value so a running game never observes later changes.
type Profile struct {
	Name          string  `yaml:"-"`
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per frame
	Impulse       float64 `yaml:"impulse"`        // Upward speed set by a flap
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // Leftward obstacle movement per frame
	GapHeight     float64 `yaml:"gap_height"`     // Vertical opening between blocks
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between obstacle spawns
}

// World describes the simulated surface.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the ground surface.
func (w World) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// Actor describes the falling cat.
type Actor struct {
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	MaxRotation      float64 `yaml:"max_rotation"`
	RotationDownRate float64 `yaml:"rotation_down_rate"`
	RotationUpRate   float64 `yaml:"rotation_up_rate"`
	HitboxScale      float64 `yaml:"hitbox_scale"`
	CeilingRebound   float64 `yaml:"ceiling_rebound"`
}

// Obstacles describes the treat-stick gates.
type Obstacles struct {
	Width       float64 `yaml:"width"`
	BlockHeight float64 `yaml:"block_height"`
	BaseOffset  float64 `yaml:"base_offset"` // Negative; gap top is BaseOffset * (1 + U[0,1))
}

// Button is a rectangle positioned relative to the world center.
type Button struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Effects holds cosmetic tuning.
type Effects struct {
	FlashRadius  float64 `yaml:"flash_radius"`
	FlashFade    float64 `yaml:"flash_fade"`
	FlashGrowth  float64 `yaml:"flash_growth"`
	CloudDrift   float64 `yaml:"cloud_drift"`
	TonguePeriod int     `yaml:"tongue_period"`
}

// Config is the complete game configuration.
type Config struct {
	World             World              `yaml:"world"`
	Actor             Actor              `yaml:"actor"`
	Obstacles         Obstacles          `yaml:"obstacles"`
	ResetButton       Button             `yaml:"reset_button"`
	Effects           Effects            `yaml:"effects"`
	DefaultDifficulty string             `yaml:"default_difficulty"`
	Presets           map[string]Profile `yaml:"presets"`
}

// Preset returns the named profile.
func (c Config) Preset(name string) (Profile, bool) {
	p, ok := c.Presets[name]
	if !ok {
		return Profile{}, false
	}
	p.Name = name
	return p, true
}

// LookupPreset returns the named profile or an error wrapping ErrUnknownPreset.
func (c Config) LookupPreset(name string) (Profile, error) {
	p, ok := c.Preset(name)
	if !ok {
		return Profile{}, fmt.Errorf("config: %w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Validate checks that every value the simulation relies on is usable.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground height %v out of range", c.World.GroundHeight))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height))
	}
	if c.Actor.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max fall speed must be positive, got %v", c.Actor.MaxFallSpeed))
	}
	if c.Actor.HitboxScale <= 0 || c.Actor.HitboxScale > 1 {
		errs = append(errs, fmt.Errorf("hitbox scale must be in (0, 1], got %v", c.Actor.HitboxScale))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.BlockHeight <= 0 {
		errs = append(errs, fmt.Errorf("obstacle size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.BlockHeight))
	}

	for _, name := range PresetNames {
		p, ok := c.Presets[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing preset %q", name))
			continue
		}
		if err := p.validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
		}
	}
	for name := range c.Presets {
		if !isPresetName(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPreset, name))
		}
	}
	if !isPresetName(c.DefaultDifficulty) {
		errs = append(errs, fmt.Errorf("default difficulty: %w: %q", ErrUnknownPreset, c.DefaultDifficulty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func (p Profile) validate() error {
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %v", p.Gravity)
	case p.Impulse <= 0:
		return fmt.Errorf("impulse must be positive, got %v", p.Impulse)
	case p.ObstacleSpeed <= 0:
		return fmt.Errorf("obstacle speed must be positive, got %v", p.ObstacleSpeed)
	case p.GapHeight <= 0:
		return fmt.Errorf("gap height must be positive, got %v", p.GapHeight)
	case p.SpawnInterval <= 0:
		return fmt.Errorf("spawn interval must be positive, got %d", p.SpawnInterval)
	}
	return nil
}

func isPresetName(name string) bool {
	for _, n := range PresetNames {
		if n == name {
			return true
		}
	}
	return false
}
