package core

// RuntimeConfig contains host-provided settings passed to the game at
// initialization.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in characters
	ScreenH  int   // Surface height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the coarse status the host reads after every tick.
type GameState struct {
	Phase      Phase
	Score      int
	Frame      int    // Simulated frames in the current run
	Difficulty string // Preset applied to the current or last run
	Selected   string // Preset the next run will use
	GameOver   bool
	Paused     bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFlapped
	EventScored
	EventCollided
	EventGroundHit
	EventPaused
	EventResumed
	EventReset
	EventDifficultySelected
	EventDebugToggled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFlapped:
		return "flapped"
	case EventScored:
		return "scored"
	case EventCollided:
		return "collided"
	case EventGroundHit:
		return "ground_hit"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	case EventDifficultySelected:
		return "difficulty_selected"
	case EventDebugToggled:
		return "debug_toggled"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick. Score carries the score after the event;
// Name carries the difficulty for start and selection events.
type Event struct {
	Kind  EventKind
	Frame int
	Score int
	Name  string
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Ended reports whether the tick ended the run.
func (r StepResult) Ended() bool {
	for _, e := range r.Events {
		if e.Kind == EventCollided || e.Kind == EventGroundHit {
			return true
		}
	}
	return false
}
