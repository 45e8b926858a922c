package game

import (
	"math/rand"

	"github.com/vovakirdan/catflap/internal/config"
	"github.com/vovakirdan/catflap/internal/core"
)

// Obstacle is a pair of treat sticks with a vertical gap between them.
// The upper stick spans [TopY, TopY+blockHeight); the lower one starts
// gapHeight below that.
type Obstacle struct {
	X      float64 // Left edge; only ever decreases
	TopY   float64 // Top of the upper stick, normally above the screen
	Passed bool    // Whether the player has scored this obstacle
}

// Stream owns the active obstacles in spawn order, which is also
// left-to-right screen order. Storage is a ring buffer so retiring the
// oldest obstacle is O(1).
type Stream struct {
	buf  []Obstacle
	head int
	n    int

	rng    *rand.Rand
	params config.Obstacles
	spawnX float64

	speed    float64
	gap      float64
	interval int
}

// NewStream creates an empty stream. Obstacles enter at spawnX.
func NewStream(seed int64, spawnX float64, params config.Obstacles) *Stream {
	return &Stream{
		buf:    make([]Obstacle, 8),
		rng:    rand.New(rand.NewSource(seed)),
		params: params,
		spawnX: spawnX,
	}
}

// Reseed restarts the placement sequence.
func (s *Stream) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Apply takes speed, gap and cadence from a difficulty profile.
func (s *Stream) Apply(p config.Profile) {
	s.speed = p.ObstacleSpeed
	s.gap = p.GapHeight
	s.interval = p.SpawnInterval
}

// Clear removes every obstacle.
func (s *Stream) Clear() {
	for i := range s.buf {
		s.buf[i] = Obstacle{}
	}
	s.head = 0
	s.n = 0
}

// Len returns the number of active obstacles.
func (s *Stream) Len() int {
	return s.n
}

// At returns the i-th obstacle counting from the oldest.
func (s *Stream) At(i int) *Obstacle {
	if i < 0 || i >= s.n {
		panic("obstacles: index out of range")
	}
	return &s.buf[(s.head+i)%len(s.buf)]
}

// Obstacles returns a copy of the active obstacles, oldest first.
func (s *Stream) Obstacles() []Obstacle {
	out := make([]Obstacle, s.n)
	for i := range out {
		out[i] = *s.At(i)
	}
	return out
}

// Push appends an obstacle at the back. It panics if the obstacle would
// sit left of the current back, since retirement relies on spawn order
// matching screen order.
func (s *Stream) Push(o Obstacle) {
	if s.n > 0 && o.X < s.At(s.n-1).X {
		panic("obstacles: spawn out of screen order")
	}
	if s.n == len(s.buf) {
		s.grow()
	}
	s.buf[(s.head+s.n)%len(s.buf)] = o
	s.n++
}

// PopFront removes the oldest obstacle.
func (s *Stream) PopFront() {
	if s.n == 0 {
		return
	}
	s.buf[s.head] = Obstacle{}
	s.head = (s.head + 1) % len(s.buf)
	s.n--
}

func (s *Stream) grow() {
	next := make([]Obstacle, len(s.buf)*2)
	for i := 0; i < s.n; i++ {
		next[i] = *s.At(i)
	}
	s.buf = next
	s.head = 0
}

// ShouldSpawn reports whether a new obstacle is due on this frame.
func (s *Stream) ShouldSpawn(frame int) bool {
	return s.interval > 0 && frame%s.interval == 0
}

// Spawn appends one obstacle at the right edge with a random vertical placement.
// The placement band depends only on BaseOffset, not on the gap size.
func (s *Stream) Spawn() {
	s.Push(Obstacle{
		X:    s.spawnX,
		TopY: s.params.BaseOffset * (s.rng.Float64() + 1),
	})
}

// Advance moves every obstacle left by the current speed.
func (s *Stream) Advance() {
	for i := 0; i < s.n; i++ {
		s.At(i).X -= s.speed
	}
}

// Retire removes the oldest obstacle once its trailing edge has reached
// the left boundary. Only the front is checked.
func (s *Stream) Retire() bool {
	if s.n == 0 {
		return false
	}
	if s.At(0).X+s.params.Width <= 0 {
		s.PopFront()
		return true
	}
	return false
}

// Width returns the obstacle width.
func (s *Stream) Width() float64 {
	return s.params.Width
}

// Gap returns the active gap height.
func (s *Stream) Gap() float64 {
	return s.gap
}

// Upper returns the hitbox of the upper stick.
func (s *Stream) Upper(o Obstacle) core.RectF {
	return core.NewRectF(o.X, o.TopY, s.params.Width, s.params.BlockHeight)
}

// Lower returns the hitbox of the lower stick.
func (s *Stream) Lower(o Obstacle) core.RectF {
	return core.NewRectF(o.X, s.GapBottom(o), s.params.Width, s.params.BlockHeight)
}

// GapTop returns the y-coordinate where the opening begins.
func (s *Stream) GapTop(o Obstacle) float64 {
	return o.TopY + s.params.BlockHeight
}

// GapBottom returns the y-coordinate where the opening ends.
func (s *Stream) GapBottom(o Obstacle) float64 {
	return s.GapTop(o) + s.gap
}
