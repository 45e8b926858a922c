package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Flap   key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Debug  key.Binding
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Reset, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start, k.Pause, k.Reset},
		{k.Easy, k.Medium, k.Hard, k.Prev, k.Next},
		{k.Debug, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hitboxes"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev difficulty"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap

	// The reset key presses the reset button at this world point.
	resetX, resetY float64
}

// NewKeyMapper creates a key mapper. resetX and resetY locate the centre of
// the reset button in world coordinates.
func NewKeyMapper(keys KeyMap, resetX, resetY float64) *KeyMapper {
	return &KeyMapper{keys: keys, resetX: resetX, resetY: resetY}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent.
// Returns the intent (may be IntentNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (intent core.Intent, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.Intent{}, true
	case key.Matches(msg, k.Flap):
		return core.Flap(), false
	case key.Matches(msg, k.Start):
		return core.Start(), false
	case key.Matches(msg, k.Pause):
		return core.TogglePause(), false
	case key.Matches(msg, k.Reset):
		return core.Reset(km.resetX, km.resetY), false
	case key.Matches(msg, k.Debug):
		return core.ToggleDebug(), false
	case key.Matches(msg, k.Easy):
		return core.SelectDifficulty(config.Easy), false
	case key.Matches(msg, k.Medium):
		return core.SelectDifficulty(config.Medium), false
	case key.Matches(msg, k.Hard):
		return core.SelectDifficulty(config.Hard), false
	case key.Matches(msg, k.Prev):
		return core.CycleDifficulty(-1), false
	case key.Matches(msg, k.Next):
		return core.CycleDifficulty(1), false
	}
	return core.Intent{}, false
}

// MapKeyToFrame queues the intent for a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	intent, isQuit := km.MapKey(msg)
	frame.Push(intent)
	return isQuit
}
