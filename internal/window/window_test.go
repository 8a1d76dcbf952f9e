package window

import (
	"slices"
	"strings"
	"testing"
	"unicode"

	"snake/internal/entities"
	"snake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func testConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Audio = false
	cfg.Seed = 42
	return cfg
}

// crashConfig starts every round against the left wall, heading into it.
func crashConfig() game.Config {
	cfg := testConfig()
	cfg.StartSnake = entities.Position{X: 0, Y: 5}
	cfg.StartDirection = entities.DirLeft
	return cfg
}

func newTestGame(t *testing.T, cfg game.Config) *Game {
	t.Helper()
	g, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func crash(t *testing.T, g *Game) {
	t.Helper()
	g.Loop().Advance(g.Loop().Engine().Config().MoveInterval)
	if _, ok := g.Loop().Notice(); !ok {
		t.Fatalf("expected a game-over notice")
	}
}

func TestScreenDimensionsPositive(t *testing.T) {
	g := newTestGame(t, testConfig())
	if g.ScreenWidth() <= 0 || g.ScreenHeight() <= 0 {
		t.Fatalf("screen dimensions must be positive, got %dx%d", g.ScreenWidth(), g.ScreenHeight())
	}
}

func TestLayoutIsNativeSize(t *testing.T) {
	g := newTestGame(t, testConfig())
	w, h := g.Layout(0, 0)
	if w != 400 || h != 400+controlsStrip {
		t.Fatalf("layout = %dx%d, want 400x%d", w, h, 400+controlsStrip)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.CanvasSize = 390
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for a canvas that is not a multiple of the cell size")
	}
}

func TestGameDrawDoesNotPanic(t *testing.T) {
	g := newTestGame(t, crashConfig())
	w, h := g.Layout(0, 0)
	screen := ebiten.NewImage(w, h)
	g.Draw(screen)

	crash(t, g)
	g.Draw(screen)
}

func TestPressRoutesButtons(t *testing.T) {
	g := newTestGame(t, testConfig())
	right := g.buttons[2]
	g.press(right.X+1, right.Y+1)
	if d := g.Loop().Engine().Direction(); d != right.Dir {
		t.Fatalf("direction = %v, want %v", d, right.Dir)
	}

	// A tap on the board with nothing to dismiss does nothing.
	g.press(5, 5)
	if d := g.Loop().Engine().Direction(); d != right.Dir {
		t.Fatalf("board tap changed direction to %v", d)
	}
}

func TestPressOnBoardClearsNotice(t *testing.T) {
	g := newTestGame(t, crashConfig())
	crash(t, g)
	g.press(5, 5)
	if _, ok := g.Loop().Notice(); ok {
		t.Fatalf("tap on the board should clear the notice")
	}
}

func TestPressOnBoardResumesHaltedLoop(t *testing.T) {
	cfg := crashConfig()
	cfg.HaltOnGameOver = true
	g := newTestGame(t, cfg)
	crash(t, g)
	if !g.Loop().Halted() {
		t.Fatalf("loop should halt after the crash")
	}
	g.press(5, 5)
	if g.Loop().Halted() {
		t.Fatalf("tap on the board should restart a halted loop")
	}
}

func TestGameOverHintNamesEveryRestart(t *testing.T) {
	words := strings.FieldsFunc(gameOverHint, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, want := range []string{"Arrow", "Enter", "R", "tap"} {
		if !slices.Contains(words, want) {
			t.Fatalf("hint %q does not mention %q", gameOverHint, want)
		}
	}
	if w := len(gameOverHint) * 7; w > 400 {
		t.Fatalf("hint is %dpx wide, wider than the default board", w)
	}
}

func TestFrameTime(t *testing.T) {
	if got := frameTime(); got <= 0 {
		t.Fatalf("frameTime = %v", got)
	}
}
