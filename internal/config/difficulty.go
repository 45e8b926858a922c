package config

// Selector tracks which difficulty preset is chosen. The choice can change
// at any time; the game only reads it when a run starts.
type Selector struct {
	cfg      Config
	selected string
}

// NewSelector creates a selector starting at the config's default preset.
func NewSelector(cfg Config) *Selector {
	s := &Selector{cfg: cfg, selected: cfg.DefaultDifficulty}
	if !isPresetName(s.selected) {
		s.selected = Medium
	}
	return s
}

// Select chooses the named preset. Unknown names are ignored and reported
// by returning false.
func (s *Selector) Select(name string) bool {
	if _, ok := s.cfg.Preset(name); !ok {
		return false
	}
	s.selected = name
	return true
}

// Cycle moves the selection by step positions through PresetNames,
// wrapping at either end.
func (s *Selector) Cycle(step int) {
	idx := 0
	for i, n := range PresetNames {
		if n == s.selected {
			idx = i
			break
		}
	}
	n := len(PresetNames)
	idx = ((idx+step)%n + n) % n
	s.selected = PresetNames[idx]
}

// Selected returns the chosen preset name.
func (s *Selector) Selected() string {
	return s.selected
}

// Profile returns a copy of the chosen preset.
func (s *Selector) Profile() Profile {
	p, _ := s.cfg.Preset(s.selected)
	return p
}
