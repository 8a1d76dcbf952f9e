package termui

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	eatToneHz     = 880
	eatToneLength = 60 * time.Millisecond
)

// BeepSounder plays a short sine tone on the system speaker. It stays silent
// when the speaker could not be opened.
type BeepSounder struct {
	ready bool
}

func NewBeepSounder(enabled bool, logger *log.Logger) *BeepSounder {
	if !enabled {
		return &BeepSounder{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound.
		logger.Printf("audio initialization failed: %v", err)
		return &BeepSounder{}
	}
	return &BeepSounder{ready: true}
}

func (s *BeepSounder) PlayEat() {
	if s == nil || !s.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, eatToneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(eatToneLength), sine))
}
