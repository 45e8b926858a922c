package game

import "github.com/vovakirdan/catflap/internal/core"

// MarkPassed flags every obstacle whose horizontal midpoint has moved left
// of actorX and returns how many were newly flagged. An obstacle is counted
// at most once over its lifetime.
func (s *Stream) MarkPassed(actorX float64) int {
	passed := 0
	for i := 0; i < s.n; i++ {
		o := s.At(i)
		if !o.Passed && o.X+s.params.Width/2 < actorX {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// Collides reports whether hitbox overlaps either stick of any active
// obstacle.
func (s *Stream) Collides(hitbox core.RectF) bool {
	for i := 0; i < s.n; i++ {
		o := *s.At(i)
		if hitbox.Intersects(s.Upper(o)) || hitbox.Intersects(s.Lower(o)) {
			return true
		}
	}
	return false
}
