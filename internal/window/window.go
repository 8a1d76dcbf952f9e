// Package window hosts the game in an ebiten window.
package window

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"snake/internal/entities"
	"snake/internal/game"
	"snake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type keyBinding struct {
	key  ebiten.Key
	name string
}

// Ordered so that simultaneous presses resolve the same way every frame.
var arrowKeys = []keyBinding{
	{ebiten.KeyArrowUp, "ArrowUp"},
	{ebiten.KeyArrowDown, "ArrowDown"},
	{ebiten.KeyArrowLeft, "ArrowLeft"},
	{ebiten.KeyArrowRight, "ArrowRight"},
}

const (
	gameOverHint = "Arrow, Enter, R or tap to play again"
	idleHint     = "Arrows, buttons or swipe"
)

// Game is the ebiten host: it polls input, feeds frame time to the loop and
// draws the board, the controls and the game-over overlay.
type Game struct {
	loop    *game.Loop
	buttons []Button

	swipe      game.SwipeDetector
	swipeTouch ebiten.TouchID
	touchIDs   []ebiten.TouchID

	scale      float64
	fullscreen bool
	quit       bool
}

func New(cfg game.Config, logger *log.Logger) (*Game, error) {
	am := NewAudioManager(cfg.SoundsDir, cfg.Audio)
	e, err := game.NewEngine(cfg, am, logger)
	if err != nil {
		return nil, err
	}
	g := &Game{
		loop:    game.NewLoop(e),
		buttons: ControlButtons(e.Grid().PixelSize()),
	}

	// Fit within ~75% of the display, never below native size.
	sw, sh := ebiten.ScreenSizeInFullscreen()
	scaleW := float64(sw) * 0.75 / float64(g.nativeWidth())
	scaleH := float64(sh) * 0.75 / float64(g.nativeHeight())
	g.scale = math.Floor(math.Min(scaleW, scaleH))
	if g.scale < 1 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1
	}
	return g, nil
}

func (g *Game) Loop() *game.Loop { return g.loop }

func (g *Game) boardSize() int    { return g.loop.Engine().Grid().PixelSize() }
func (g *Game) nativeWidth() int  { return g.boardSize() }
func (g *Game) nativeHeight() int { return g.boardSize() + controlsStrip }

func (g *Game) ScreenWidth() int  { return int(float64(g.nativeWidth()) * g.scale) }
func (g *Game) ScreenHeight() int { return int(float64(g.nativeHeight()) * g.scale) }

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.loop.Advance(frameTime())
	return nil
}

// frameTime is the host time covered by one Update call.
func frameTime() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.nativeWidth(), g.nativeHeight()
}

func (g *Game) handleInput() {
	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			d, _ := game.KeyDirection(k.name)
			g.loop.Input(d)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(ebiten.CursorPosition())
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if _, ok := ButtonAt(g.buttons, x, y); ok {
			g.press(x, y)
			continue
		}
		// Single-finger swipes only: later fingers are ignored while one is down.
		if !g.swipe.Tracking() {
			g.swipeTouch = id
			g.swipe.Begin(float64(x), float64(y))
		}
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if !g.swipe.Tracking() || id != g.swipeTouch {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if d, ok := g.swipe.End(float64(x), float64(y)); ok {
			g.loop.Input(d)
		}
	}
}

// press handles a click or tap at logical screen coordinates.
func (g *Game) press(x, y int) {
	if b, ok := ButtonAt(g.buttons, x, y); ok {
		g.loop.Input(b.Dir)
		return
	}
	if _, ok := g.loop.Notice(); ok || g.loop.Halted() {
		g.loop.Restart()
	}
}

var (
	buttonColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	overlayTint = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	hintColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	e := g.loop.Engine()
	st := e.State()
	size := g.boardSize()
	DrawBoard(screen, size, render.Frame(st.Snake.Body, st.Food, e.Grid()))

	for _, b := range g.buttons {
		vector.DrawFilledRect(screen, float32(b.X+1), float32(b.Y+1), float32(b.W-2), float32(b.H-2), buttonColor, false)
		text.Draw(screen, b.Label, basicfont.Face7x13, b.X+b.W/2-3, b.Y+b.H/2+4, color.White)
	}
	text.Draw(screen, fmt.Sprintf("Score: %d", st.Score), basicfont.Face7x13, 6, size+18, color.White)
	if st.Direction == entities.DirNone {
		text.Draw(screen, idleHint, basicfont.Face7x13, 6, size+controlsStrip-8, hintColor)
	}

	if n, ok := g.loop.Notice(); ok {
		vector.DrawFilledRect(screen, 0, 0, float32(size), float32(size), overlayTint, false)
		drawCentered(screen, n.Message, size, size/2, color.White)
		drawCentered(screen, gameOverHint, size, size/2+18, hintColor)
	}
}

// drawCentered draws s centered across a board of the given width.
func drawCentered(dst *ebiten.Image, s string, width, y int, clr color.Color) {
	w := len(s) * 7 // Face7x13 glyphs are 7px wide
	text.Draw(dst, s, basicfont.Face7x13, (width-w)/2, y, clr)
}
