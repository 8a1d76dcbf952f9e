// Package render turns game state into filled cells and paints them on a
// tcell screen.
package render

import (
	"snake/internal/entities"
	"snake/internal/grid"
)

type Kind int

const (
	KindSnake Kind = iota
	KindFood
)

// Rect is one filled square in pixel space.
type Rect struct {
	X, Y, W, H int
	Kind       Kind
}

// Frame lays out one square per snake segment followed by the food square.
// It only reads its arguments.
func Frame(snake []entities.Position, food entities.Position, g *grid.Grid) []Rect {
	rects := make([]Rect, 0, len(snake)+1)
	for _, p := range snake {
		rects = append(rects, cellRect(g, p, KindSnake))
	}
	return append(rects, cellRect(g, food, KindFood))
}

func cellRect(g *grid.Grid, p entities.Position, k Kind) Rect {
	x, y := g.PixelOrigin(p)
	return Rect{X: x, Y: y, W: g.CellSize, H: g.CellSize, Kind: k}
}
