package grid

import (
	"errors"
	"fmt"

	"snake/internal/entities"
)

var ErrInvalidGeometry = errors.New("invalid grid geometry")

// Intn is satisfied by math/rand and golang.org/x/exp/rand generators.
type Intn interface {
	Intn(n int) int
}

// Grid is a square field of TileCount x TileCount cells, each CellSize pixels wide.
type Grid struct {
	TileCount int
	CellSize  int
}

// New derives the tile count from a square canvas edge. The canvas must be an
// exact multiple of the cell size.
func New(canvasSize, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size %d: %w", cellSize, ErrInvalidGeometry)
	}
	if canvasSize < cellSize || canvasSize%cellSize != 0 {
		return nil, fmt.Errorf("canvas %d is not a multiple of cell size %d: %w", canvasSize, cellSize, ErrInvalidGeometry)
	}
	return &Grid{TileCount: canvasSize / cellSize, CellSize: cellSize}, nil
}

func (g *Grid) PixelSize() int {
	return g.TileCount * g.CellSize
}

func (g *Grid) Contains(p entities.Position) bool {
	return p.X >= 0 && p.X < g.TileCount && p.Y >= 0 && p.Y < g.TileCount
}

// PixelOrigin returns the top-left pixel of a cell.
func (g *Grid) PixelOrigin(p entities.Position) (x, y int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// RandomCell picks a cell uniformly over the whole field. Occupied cells are not excluded.
func (g *Grid) RandomCell(r Intn) entities.Position {
	return entities.Position{X: r.Intn(g.TileCount), Y: r.Intn(g.TileCount)}
}
