// Package game implements the catflap simulation: a cat falls under gravity
// and must flap through gaps between treat sticks. One call to Step is one
// frame; all input arrives as queued intents applied at the frame boundary.
package game

import (
	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

// Title is the display name.
const Title = "Catflap"

// Game owns the entire run state. It is mutated in place by Step and is
// not safe for concurrent use; the host drives it from a single loop.
type Game struct {
	cfg      config.Config
	selector *config.Selector

	phase   core.Phase
	profile config.Profile // Applied at the last start
	score   int
	frame   int
	debug   bool

	actor  *Actor
	stream *Stream
	decor  *decor

	events []core.Event
}

// New creates a game using the given configuration. Call Reset before the
// first Step.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:      cfg,
		selector: config.NewSelector(cfg),
		actor:    NewActor(cfg.Actor),
		stream:   NewStream(0, cfg.World.Width, cfg.Obstacles),
		decor:    newDecor(1, cfg.World, cfg.Effects),
	}
	g.profile = g.selector.Profile()
	return g
}

// Reset initializes the game for a host: it reseeds the RNGs and returns
// to the start screen. The difficulty selection survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.stream.Reseed(runtime.Seed)
	g.decor.reset(runtime.Seed + 1)
	g.debug = false
	g.resetRun()
}

// Select chooses a difficulty preset directly, outside the intent queue.
// Used by the CLI before the first frame.
func (g *Game) Select(name string) bool {
	return g.selector.Select(name)
}

// SetDebug sets the hitbox overlay flag.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Step advances the game by one frame. Intents queued in the frame are
// applied first, in order, then the simulation runs if the phase is
// Running.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	for _, intent := range in.Intents() {
		g.apply(intent)
	}

	if g.phase == core.PhaseRunning {
		g.simulate()
		g.frame++
	}

	if g.phase != core.PhasePaused {
		drift := g.phase == core.PhaseRunning || g.phase == core.PhaseGameOver
		g.decor.advance(drift)
	}

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// apply handles one intent. Intents that make no sense in the current
// phase are ignored.
func (g *Game) apply(in core.Intent) {
	switch in.Kind {
	case core.IntentStart:
		if g.phase == core.PhaseNotStarted {
			g.begin()
		}

	case core.IntentFlap:
		g.flap()

	case core.IntentClick:
		switch g.phase {
		case core.PhaseNotStarted, core.PhaseRunning:
			g.flap()
		case core.PhaseGameOver:
			g.tryReset(in.X, in.Y)
		}

	case core.IntentTogglePause:
		switch g.phase {
		case core.PhaseRunning:
			g.phase = core.PhasePaused
			g.emit(core.EventPaused, "")
		case core.PhasePaused:
			g.phase = core.PhaseRunning
			g.emit(core.EventResumed, "")
		}

	case core.IntentReset:
		g.tryReset(in.X, in.Y)

	case core.IntentSelectDifficulty:
		if g.selector.Select(in.Name) {
			g.emit(core.EventDifficultySelected, in.Name)
		}

	case core.IntentCycleDifficulty:
		if in.Step != 0 {
			g.selector.Cycle(in.Step)
			g.emit(core.EventDifficultySelected, g.selector.Selected())
		}

	case core.IntentToggleDebug:
		g.debug = !g.debug
		g.emit(core.EventDebugToggled, "")
	}
}

// flap is the primary action: it starts a run from the start screen and
// is an impulse while running.
func (g *Game) flap() {
	switch g.phase {
	case core.PhaseNotStarted:
		g.begin()
	case core.PhaseRunning:
		g.actor.Flap()
		g.emit(core.EventFlapped, "")
	}
}

// begin reads the selected preset and starts a run. This is the only
// point where a difficulty change takes effect.
func (g *Game) begin() {
	g.profile = g.selector.Profile()
	g.actor.Apply(g.profile)
	g.stream.Apply(g.profile)
	g.stream.Clear()
	g.phase = core.PhaseRunning
	g.emit(core.EventStarted, g.profile.Name)
}

// tryReset returns to the start screen if the run is over and the release
// point is on the reset button.
func (g *Game) tryReset(x, y float64) {
	if g.phase != core.PhaseGameOver {
		return
	}
	if !g.ResetButton().ContainsOpen(x, y) {
		return
	}
	g.resetRun()
	g.emit(core.EventReset, "")
}

func (g *Game) resetRun() {
	g.phase = core.PhaseNotStarted
	g.score = 0
	g.frame = 0
	g.actor.ResetPose()
	g.stream.Clear()
	g.decor.clearFlashes()
}

// simulate runs one Running frame: spawn, advance, score, collide, retire,
// then actor physics. A collision ends the run before the actor moves.
func (g *Game) simulate() {
	if g.stream.ShouldSpawn(g.frame) {
		g.stream.Spawn()
	}
	g.stream.Advance()

	for n := g.stream.MarkPassed(g.actor.X); n > 0; n-- {
		g.score++
		g.decor.addFlash(g.actor.X+g.actor.Width, g.actor.Y)
		g.emit(core.EventScored, "")
	}

	if g.stream.Collides(g.actor.Hitbox()) {
		g.phase = core.PhaseGameOver
		g.emit(core.EventCollided, "")
		return
	}

	g.stream.Retire()

	g.actor.Integrate()
	if g.actor.ClampBounds(g.cfg.World.GroundY()) {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGroundHit, "")
	}
}

func (g *Game) emit(kind core.EventKind, name string) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Frame: g.frame,
		Score: g.score,
		Name:  name,
	})
}

// ResetButton returns the reset button region in world coordinates.
func (g *Game) ResetButton() core.RectF {
	b := g.cfg.ResetButton
	return core.NewRectF(
		g.cfg.World.Width/2+b.OffsetX,
		g.cfg.World.Height/2+b.OffsetY,
		b.Width,
		b.Height,
	)
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// State returns the current coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase,
		Score:      g.score,
		Frame:      g.frame,
		Difficulty: g.profile.Name,
		Selected:   g.selector.Selected(),
		GameOver:   g.phase == core.PhaseGameOver,
		Paused:     g.phase == core.PhasePaused,
	}
}
