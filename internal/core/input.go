package core

// IntentKind is a semantic user intent, abstracted from physical keys and
// mouse buttons. The host produces intents; the simulation consumes them.
type IntentKind int

const (
	IntentNone             IntentKind = iota
	IntentStart                       // Begin a run from the start screen
	IntentFlap                        // Upward impulse; also starts a run from the start screen
	IntentClick                       // Pointer release at (X, Y) in world units, resolved by phase
	IntentTogglePause                 // Pause while running, resume while paused
	IntentReset                       // Release at (X, Y); honoured only on the reset button
	IntentSelectDifficulty            // Choose the preset named by Name
	IntentCycleDifficulty             // Step through presets; Step is +1 or -1
	IntentToggleDebug                 // Show or hide the hitbox overlay
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentFlap:
		return "Flap"
	case IntentClick:
		return "Click"
	case IntentTogglePause:
		return "TogglePause"
	case IntentReset:
		return "Reset"
	case IntentSelectDifficulty:
		return "SelectDifficulty"
	case IntentCycleDifficulty:
		return "CycleDifficulty"
	case IntentToggleDebug:
		return "ToggleDebug"
	default:
		return "Unknown"
	}
}

// Intent is a single queued user intent.
type Intent struct {
	Kind IntentKind
	X, Y float64 // World point for Click and Reset
	Name string  // Preset name for SelectDifficulty
	Step int     // Direction for CycleDifficulty
}

// Start returns a start intent.
func Start() Intent { return Intent{Kind: IntentStart} }

// Flap returns an impulse intent.
func Flap() Intent { return Intent{Kind: IntentFlap} }

// Click returns a pointer release at a world point.
func Click(x, y float64) Intent { return Intent{Kind: IntentClick, X: x, Y: y} }

// TogglePause returns a pause-toggle intent.
func TogglePause() Intent { return Intent{Kind: IntentTogglePause} }

// Reset returns a reset intent released at a world point.
func Reset(x, y float64) Intent { return Intent{Kind: IntentReset, X: x, Y: y} }

// SelectDifficulty returns a preset selection intent.
func SelectDifficulty(name string) Intent {
	return Intent{Kind: IntentSelectDifficulty, Name: name}
}

// CycleDifficulty returns an intent moving the selection by step presets.
func CycleDifficulty(step int) Intent {
	return Intent{Kind: IntentCycleDifficulty, Step: step}
}

// ToggleDebug returns a hitbox overlay toggle.
func ToggleDebug() Intent { return Intent{Kind: IntentToggleDebug} }

// InputFrame collects the intents delivered between two simulation ticks.
// Order of arrival is preserved so the simulation applies them exactly as
// the user produced them.
type InputFrame struct {
	intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{intents: make([]Intent, 0, 4)}
}

// Push appends an intent. IntentNone is dropped.
func (f *InputFrame) Push(in Intent) {
	if in.Kind == IntentNone {
		return
	}
	f.intents = append(f.intents, in)
}

// Len returns the number of queued intents.
func (f InputFrame) Len() int {
	return len(f.intents)
}

// Intents returns the queued intents in arrival order.
func (f InputFrame) Intents() []Intent {
	return f.intents
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	f.intents = f.intents[:0]
}

// FrameOf builds an input frame from the given intents.
func FrameOf(intents ...Intent) InputFrame {
	f := NewInputFrame()
	for _, in := range intents {
		f.Push(in)
	}
	return f
}
