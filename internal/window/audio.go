package window

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	audioSampleRate = 44100
	eatSoundFile    = "eat.wav"
)

type SoundData struct {
	raw []byte
}

// AudioManager plays the eat cue through ebiten. A manager without a context
// is silent, so callers never need to check.
type AudioManager struct {
	ctx *audio.Context
	eat *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext(enabled bool) *audio.Context {
	if !enabled {
		return nil
	}
	// ebiten allows a single audio context per process.
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(audioSampleRate)
	})
	return audioCtx
}

// NewAudioManager loads eat.wav from soundsDir, falling back to a
// synthesized beep. enabled is the resolved Config.Audio setting.
func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	am := &AudioManager{ctx: getAudioContext(enabled)}
	if sd, err := loadSoundData(soundsDir, eatSoundFile); err == nil {
		am.eat = sd
	} else {
		am.eat = &SoundData{raw: synthBeepWAV(audioSampleRate, 80, 880)}
	}
	return am
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	return &SoundData{raw: b}, nil
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode per play so cues can overlap.
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayEat() {
	if am != nil {
		am.play(am.eat)
	}
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)
	le := binary.LittleEndian

	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], 16)
	le.PutUint16(buf[20:22], 1) // PCM
	le.PutUint16(buf[22:24], 1) // mono
	le.PutUint32(buf[24:28], uint32(sampleRate))
	le.PutUint32(buf[28:32], uint32(sampleRate*2))
	le.PutUint16(buf[32:34], 2)
	le.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		// Fade out over the cue to avoid a click at the end.
		env := 1 - float64(i)/float64(numSamples)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767 * amp * env)
		le.PutUint16(buf[44+i*2:], uint16(v))
	}
	return buf
}
