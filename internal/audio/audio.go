// Package audio plays short synthesized tones for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine produces the game's sound effects. A disabled engine accepts
// every Play call and does nothing, so callers never need to branch.
type Engine struct {
	enabled bool
}

// New initializes the speaker if audio is enabled. Initialization
// failure degrades to a silent engine rather than an error: sound is
// never worth refusing to start over.
func New(enabled bool) *Engine {
	if !enabled {
		return &Engine{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return &Engine{}
	}
	return &Engine{enabled: true}
}

// Close releases the speaker.
func (e *Engine) Close() {
	if !e.enabled {
		return
	}
	speaker.Close()
}

// play queues a sine tone of the given frequency and duration.
func (e *Engine) play(freq float64, dur time.Duration) {
	if !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

// PlayDot is the short blip for collecting a dot.
func (e *Engine) PlayDot() {
	e.play(660, 30*time.Millisecond)
}

// PlayPellet marks the start of a power window.
func (e *Engine) PlayPellet() {
	e.play(440, 120*time.Millisecond)
}

// PlayGhostEaten rewards eating a vulnerable ghost.
func (e *Engine) PlayGhostEaten() {
	e.play(880, 100*time.Millisecond)
}

// PlayDeath is the low tone for losing a life.
func (e *Engine) PlayDeath() {
	e.play(110, 400*time.Millisecond)
}

// PlayLevelClear celebrates clearing a maze.
func (e *Engine) PlayLevelClear() {
	e.play(1320, 250*time.Millisecond)
}
