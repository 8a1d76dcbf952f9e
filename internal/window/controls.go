package window

import (
	"snake/internal/entities"
	"snake/internal/game"
)

const (
	buttonSize    = 40
	controlsPad   = 4
	controlsStrip = 3*buttonSize + 2*controlsPad
)

// Button is an on-screen direction control in screen pixels.
type Button struct {
	Name  string
	Label string
	Dir   entities.Direction
	X, Y  int
	W, H  int
}

func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// ControlButtons lays out a d-pad centered in the strip below a board of the given size.
func ControlButtons(boardSize int) []Button {
	cx := boardSize / 2
	top := boardSize + controlsPad
	at := func(name, label string, col, row int) Button {
		d, _ := game.ButtonDirection(name)
		return Button{
			Name:  name,
			Label: label,
			Dir:   d,
			X:     cx - buttonSize/2 + col*buttonSize,
			Y:     top + row*buttonSize,
			W:     buttonSize,
			H:     buttonSize,
		}
	}
	return []Button{
		at("up", "^", 0, 0),
		at("left", "<", -1, 1),
		at("right", ">", 1, 1),
		at("down", "v", 0, 2),
	}
}

func ButtonAt(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
