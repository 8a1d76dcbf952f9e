package game

import (
	"math"

	"snake/internal/entities"

	"github.com/joonazan/vec2"
)

var keyDirections = map[string]entities.Direction{
	"ArrowUp":    entities.DirUp,
	"ArrowDown":  entities.DirDown,
	"ArrowLeft":  entities.DirLeft,
	"ArrowRight": entities.DirRight,
}

var buttonDirections = map[string]entities.Direction{
	"up":    entities.DirUp,
	"down":  entities.DirDown,
	"left":  entities.DirLeft,
	"right": entities.DirRight,
}

// KeyDirection maps an arrow key name to its direction.
func KeyDirection(key string) (entities.Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// ButtonDirection maps an on-screen button name to its direction.
func ButtonDirection(name string) (entities.Direction, bool) {
	d, ok := buttonDirections[name]
	return d, ok
}

// CanSteer reports whether next may replace current. A horizontal turn needs
// no horizontal motion and a vertical turn needs no vertical motion.
func CanSteer(current, next entities.Direction) bool {
	switch {
	case next.Horizontal() && !next.Vertical():
		return current.DX == 0
	case next.Vertical() && !next.Horizontal():
		return current.DY == 0
	default:
		return false
	}
}

// SwipeDirection turns a gesture displacement into a direction. The dominant
// axis wins, ties go to the vertical axis, and there is no minimum distance.
func SwipeDirection(start, end vec2.Vector) (entities.Direction, bool) {
	d := end.Minus(start)
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return entities.DirRight, true
		}
		return entities.DirLeft, true
	}
	switch {
	case d.Y > 0:
		return entities.DirDown, true
	case d.Y < 0:
		return entities.DirUp, true
	}
	return entities.DirNone, false
}

// SwipeDetector pairs a touch start with its end.
type SwipeDetector struct {
	start    vec2.Vector
	tracking bool
}

func (s *SwipeDetector) Begin(x, y float64) {
	s.start = vec2.Vector{X: x, Y: y}
	s.tracking = true
}

func (s *SwipeDetector) Tracking() bool {
	return s.tracking
}

// End finishes the gesture. It reports false when no gesture was started or
// the finger did not move.
func (s *SwipeDetector) End(x, y float64) (entities.Direction, bool) {
	if !s.tracking {
		return entities.DirNone, false
	}
	s.tracking = false
	return SwipeDirection(s.start, vec2.Vector{X: x, Y: y})
}
