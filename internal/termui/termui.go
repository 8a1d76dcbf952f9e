// Package termui hosts the game in a terminal using tcell.
package termui

import (
	"context"
	"fmt"
	"time"

	"snake/internal/entities"
	"snake/internal/game"
	"snake/internal/render"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 60

// maxCatchUpSteps bounds the steps one wake-up may run after the process was
// stopped or the ticker starved.
const maxCatchUpSteps = 3

var (
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var keyDirections = map[tcell.Key]string{
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyRight: "ArrowRight",
}

// App runs the loop against a tcell screen. Only the goroutine inside Run
// touches the loop; screen events reach it over a channel.
type App struct {
	screen tcell.Screen
	loop   *game.Loop
}

func New(screen tcell.Screen, loop *game.Loop) *App {
	return &App{screen: screen, loop: loop}
}

// Run blocks until the player quits or ctx is cancelled. The caller owns the
// screen and must Fini it afterwards.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.loop.Advance(a.frameDelta(now.Sub(last)))
			last = now
		}
		a.draw()
	}
}

// frameDelta clamps a measured frame to maxCatchUpSteps move intervals.
func (a *App) frameDelta(d time.Duration) time.Duration {
	limit := maxCatchUpSteps * a.loop.Engine().Config().MoveInterval
	if d > limit {
		return limit
	}
	return d
}

// handleEvent applies one screen event and reports whether the player quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if name, ok := keyDirections[ev.Key()]; ok {
			d, _ := game.KeyDirection(name)
			a.loop.Input(d)
			return false
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			a.loop.Restart()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'r', 'R':
				a.loop.Restart()
			}
		}
	}
	return false
}

func (a *App) draw() {
	a.screen.Clear()
	e := a.loop.Engine()
	st := e.State()
	g := e.Grid()

	render.DrawTerm(a.screen, 0, 0, g, render.Frame(st.Snake.Body, st.Food, g))
	_, h := render.TermSize(g)
	render.DrawText(a.screen, 1, h, scoreStyle, fmt.Sprintf("Score: %d", st.Score))

	if n, ok := a.loop.Notice(); ok {
		render.DrawText(a.screen, 1, h+1, noticeStyle, n.Message)
		render.DrawText(a.screen, 1, h+2, hintStyle, "Press an arrow key to play again, q to quit")
	} else if st.Direction == entities.DirNone {
		render.DrawText(a.screen, 1, h+1, hintStyle, "Arrow keys to move, q to quit")
	}
	a.screen.Show()
}
