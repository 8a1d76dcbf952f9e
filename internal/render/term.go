package render

import (
	"snake/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two terminal columns wide so the field looks square.
const termCellWidth = 2

var (
	termBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	termSnake  = tcell.StyleDefault.Background(tcell.ColorGreen)
	termFood   = tcell.StyleDefault.Background(tcell.ColorRed)
)

// TermSize is the screen area needed for a bordered board.
func TermSize(g *grid.Grid) (w, h int) {
	return g.TileCount*termCellWidth + 2, g.TileCount + 2
}

// DrawTerm paints a bordered board with its top-left border corner at (ox, oy).
func DrawTerm(s tcell.Screen, ox, oy int, g *grid.Grid, rects []Rect) {
	w, h := TermSize(g)
	for x := 1; x < w-1; x++ {
		s.SetContent(ox+x, oy, tcell.RuneHLine, nil, termBorder)
		s.SetContent(ox+x, oy+h-1, tcell.RuneHLine, nil, termBorder)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(ox, oy+y, tcell.RuneVLine, nil, termBorder)
		s.SetContent(ox+w-1, oy+y, tcell.RuneVLine, nil, termBorder)
	}
	s.SetContent(ox, oy, tcell.RuneULCorner, nil, termBorder)
	s.SetContent(ox+w-1, oy, tcell.RuneURCorner, nil, termBorder)
	s.SetContent(ox, oy+h-1, tcell.RuneLLCorner, nil, termBorder)
	s.SetContent(ox+w-1, oy+h-1, tcell.RuneLRCorner, nil, termBorder)

	for _, r := range rects {
		style := termSnake
		if r.Kind == KindFood {
			style = termFood
		}
		col := ox + 1 + r.X/g.CellSize*termCellWidth
		row := oy + 1 + r.Y/g.CellSize
		for i := 0; i < termCellWidth; i++ {
			s.SetContent(col+i, row, ' ', nil, style)
		}
	}
}

// DrawText writes str starting at (x, y).
func DrawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
