package entities

import "fmt"

// Direction is a unit step on the grid. The zero value is the stationary direction.
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

func (d Direction) Horizontal() bool { return d.DX != 0 }
func (d Direction) Vertical() bool   { return d.DY != 0 }

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Position is a grid cell, 0-indexed from the top-left corner.
type Position struct {
	X, Y int
}

func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}
