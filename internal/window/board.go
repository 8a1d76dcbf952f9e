package window

import (
	"image/color"

	"snake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	BoardColor = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	SnakeColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	FoodColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

func kindColor(k render.Kind) color.Color {
	if k == render.KindFood {
		return FoodColor
	}
	return SnakeColor
}

// DrawBoard clears a size x size board at the origin of dst and fills rects on it.
func DrawBoard(dst *ebiten.Image, size int, rects []render.Rect) {
	vector.DrawFilledRect(dst, 0, 0, float32(size), float32(size), BoardColor, false)
	for _, r := range rects {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), kindColor(r.Kind), false)
	}
}
