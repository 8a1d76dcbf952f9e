package game

import (
	"time"

	"snake/internal/entities"
)

// Loop runs the engine at a fixed tick over a variable frame rate. Frame time
// is accumulated and drained one interval at a time, so no time is lost to
// late frames.
type Loop struct {
	engine   *Engine
	interval time.Duration
	elapsed  time.Duration
	ticks    uint64

	haltOnGameOver bool
	halted         bool
	notice         *Notice
}

func NewLoop(e *Engine) *Loop {
	return &Loop{
		engine:         e,
		interval:       e.cfg.MoveInterval,
		haltOnGameOver: e.cfg.HaltOnGameOver,
	}
}

func (l *Loop) Engine() *Engine { return l.engine }
func (l *Loop) Ticks() uint64   { return l.ticks }
func (l *Loop) Halted() bool    { return l.halted }

// Advance feeds one frame's worth of time and returns how many ticks ran.
func (l *Loop) Advance(frame time.Duration) int {
	if l.halted || frame <= 0 {
		return 0
	}
	l.elapsed += frame
	n := 0
	for l.elapsed >= l.interval {
		l.elapsed -= l.interval
		res := l.engine.Step()
		l.ticks++
		n++
		if res.Outcome != Crashed {
			continue
		}
		l.notice = newNotice(res.Score)
		if l.haltOnGameOver {
			l.halted = true
			l.elapsed = 0
			break
		}
	}
	return n
}

// Notice returns the pending game-over message, if any.
func (l *Loop) Notice() (Notice, bool) {
	if l.notice == nil {
		return Notice{}, false
	}
	return *l.notice, true
}

func (l *Loop) Dismiss() {
	l.notice = nil
}

// Restart resumes a halted loop and clears the game-over message.
func (l *Loop) Restart() {
	l.halted = false
	l.elapsed = 0
	l.notice = nil
}

// Input routes a player's direction to the engine. Any input clears the
// game-over message and resumes a halted loop first.
func (l *Loop) Input(d entities.Direction) bool {
	if l.halted {
		l.Restart()
	}
	l.notice = nil
	return l.engine.Steer(d)
}
