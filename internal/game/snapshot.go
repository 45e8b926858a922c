package game

import "github.com/vovakirdan/catflap/internal/core"

// ActorView is the actor pose exposed to renderers.
type ActorView struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Rotation      float64
	Hitbox        core.RectF
}

// ObstacleView is one obstacle with its derived geometry.
type ObstacleView struct {
	X         float64
	GapTop    float64
	GapBottom float64
	Passed    bool
	Upper     core.RectF
	Lower     core.RectF
}

// Snapshot is a value copy of everything a renderer needs. Mutating it
// never affects the game.
type Snapshot struct {
	Phase      core.Phase
	Difficulty string
	Selected   string
	Score      int
	Frame      int
	Debug      bool

	Actor     ActorView
	Obstacles []ObstacleView // Spawn order, which is also left-to-right
	Flashes   []Flash
	Clouds    []Cloud
	TongueOut bool

	World       core.RectF
	GroundY     float64
	ResetButton core.RectF
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, g.stream.Len())
	for _, o := range g.stream.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			X:         o.X,
			GapTop:    g.stream.GapTop(o),
			GapBottom: g.stream.GapBottom(o),
			Passed:    o.Passed,
			Upper:     g.stream.Upper(o),
			Lower:     g.stream.Lower(o),
		})
	}

	flashes := make([]Flash, len(g.decor.flashes))
	copy(flashes, g.decor.flashes)
	clouds := make([]Cloud, len(g.decor.clouds))
	copy(clouds, g.decor.clouds)

	a := g.actor
	return Snapshot{
		Phase:      g.phase,
		Difficulty: g.profile.Name,
		Selected:   g.selector.Selected(),
		Score:      g.score,
		Frame:      g.frame,
		Debug:      g.debug,
		Actor: ActorView{
			X:        a.X,
			Y:        a.Y,
			Width:    a.Width,
			Height:   a.Height,
			Velocity: a.Velocity,
			Rotation: a.Rotation,
			Hitbox:   a.Hitbox(),
		},
		Obstacles:   obstacles,
		Flashes:     flashes,
		Clouds:      clouds,
		TongueOut:   g.decor.tongueOut,
		World:       core.NewRectF(0, 0, g.cfg.World.Width, g.cfg.World.Height),
		GroundY:     g.cfg.World.GroundY(),
		ResetButton: g.ResetButton(),
	}
}
