package game

import "github.com/vovakirdan/catflap/internal/core"

// InputPolicy decides the intents for the next frame from the current
// snapshot. Used by headless drivers.
type InputPolicy interface {
	Intents(s Snapshot) []core.Intent
}

// PolicyFunc adapts a function into an InputPolicy.
type PolicyFunc func(s Snapshot) []core.Intent

// Intents calls f(s).
func (f PolicyFunc) Intents(s Snapshot) []core.Intent {
	return f(s)
}

// Autopilot starts a run and then flaps to stay level with the next gap.
// It is a demo player, not an optimal one.
type Autopilot struct{}

// Intents implements InputPolicy.
func (Autopilot) Intents(s Snapshot) []core.Intent {
	switch s.Phase {
	case core.PhaseNotStarted:
		return []core.Intent{core.Start()}
	case core.PhaseRunning:
	default:
		return nil
	}

	target := s.World.H / 2
	for _, o := range s.Obstacles {
		if o.Upper.Right() >= s.Actor.Hitbox.X {
			target = (o.GapTop + o.GapBottom) / 2
			break
		}
	}

	_, cy := s.Actor.Hitbox.Center()
	if cy > target && s.Actor.Velocity >= 0 {
		return []core.Intent{core.Flap()}
	}
	return nil
}

// Summary reports the outcome of a headless run.
type Summary struct {
	Frames     int // Steps taken
	RunFrames  int // Simulated frames in the final run
	Score      int
	Difficulty string
	Phase      core.Phase
	Events     []core.Event
}

// RunFrames steps g up to n times, asking policy for each frame's intents.
// It stops early when a run ends. A nil policy sends no input.
func RunFrames(g *Game, n int, policy InputPolicy) Summary {
	var sum Summary
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		if policy != nil {
			for _, intent := range policy.Intents(g.Snapshot()) {
				in.Push(intent)
			}
		}

		res := g.Step(in)
		sum.Frames++
		sum.Events = append(sum.Events, res.Events...)
		if res.Ended() {
			break
		}
	}

	st := g.State()
	sum.RunFrames = st.Frame
	sum.Score = st.Score
	sum.Difficulty = st.Difficulty
	sum.Phase = st.Phase
	return sum
}
