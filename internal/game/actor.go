package game

import (
	"math"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

// Actor is the falling cat. X and the size are fixed once spawned; the
// vertical pose changes through gravity and flaps.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Positive is downward
	Rotation      float64 // Radians, cosmetic; positive is nose-down

	params  config.Actor
	gravity float64
	impulse float64
}

// NewActor creates an actor at its spawn pose.
func NewActor(params config.Actor) *Actor {
	a := &Actor{params: params}
	a.ResetPose()
	return a
}

// ResetPose restores the spawn position and clears motion.
func (a *Actor) ResetPose() {
	a.X = a.params.X
	a.Y = a.params.Y
	a.Width = a.params.Width
	a.Height = a.params.Height
	a.Velocity = 0
	a.Rotation = 0
}

// Apply takes gravity and impulse from a difficulty profile.
func (a *Actor) Apply(p config.Profile) {
	a.gravity = p.Gravity
	a.impulse = p.Impulse
}

// Flap replaces vertical motion with a full upward impulse. Repeated calls
// within a frame have the same effect as one.
func (a *Actor) Flap() {
	a.Velocity = -a.impulse
	a.Rotation = -a.params.MaxRotation
}

// Integrate advances one frame of gravity: velocity first, clamped to the
// terminal speed, then position. Rotation eases toward nose-down while
// falling fast and toward nose-up otherwise, recovering upward faster.
func (a *Actor) Integrate() {
	a.Velocity = math.Min(a.Velocity+a.gravity, a.params.MaxFallSpeed)
	a.Y += a.Velocity

	if a.Velocity >= a.impulse/2 {
		a.Rotation = math.Min(a.params.MaxRotation, a.Rotation+a.params.RotationDownRate)
	} else {
		a.Rotation = math.Max(-a.params.MaxRotation, a.Rotation-a.params.RotationUpRate)
	}
}

// ClampBounds keeps the actor between the ceiling and groundY. It reports
// whether the actor is touching the ground. Touching the ceiling imparts a
// small downward rebound so the actor does not stick.
func (a *Actor) ClampBounds(groundY float64) (grounded bool) {
	if a.Y+a.Height >= groundY {
		a.Y = groundY - a.Height
		grounded = true
	}
	if a.Y <= 0 {
		a.Y = 0
		a.Velocity = a.params.CeilingRebound
	}
	return grounded
}

// Bounds returns the visual rectangle.
func (a *Actor) Bounds() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// Hitbox returns the collision rectangle, inset from the visual one.
func (a *Actor) Hitbox() core.RectF {
	return a.Bounds().Inset(a.params.HitboxScale)
}
