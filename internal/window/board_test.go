package window

import (
	"testing"

	"snake/internal/entities"
	"snake/internal/grid"
	"snake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawBoardDoesNotPanic(t *testing.T) {
	g, _ := grid.New(400, 20)
	img := ebiten.NewImage(g.PixelSize(), g.PixelSize())
	DrawBoard(img, g.PixelSize(), render.Frame([]entities.Position{{X: 10, Y: 10}}, entities.Position{X: 5, Y: 5}, g))
}

func TestKindColor(t *testing.T) {
	if kindColor(render.KindSnake) != SnakeColor || kindColor(render.KindFood) != FoodColor {
		t.Fatalf("unexpected kind colors")
	}
}
