// Package audio plays the short tones for eating and for a reset.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Cues is safe to use when audio is disabled or failed to start: every
// method is then a no-op.
type Cues struct {
	initialized bool
}

// Disabled returns cues that never make a sound.
func Disabled() *Cues {
	return &Cues{}
}

// New opens the speaker.
func New() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return Disabled(), errors.Wrap(err, "init speaker")
	}
	return &Cues{initialized: true}, nil
}

func (c *Cues) Enabled() bool {
	return c.initialized
}

// Eat plays a short high blip.
func (c *Cues) Eat() {
	c.play(tone(880, 60*time.Millisecond))
}

// Reset plays a falling two-note buzz.
func (c *Cues) Reset() {
	c.play(beep.Seq(
		tone(330, 120*time.Millisecond),
		tone(220, 180*time.Millisecond),
	))
}

func (c *Cues) play(s beep.Streamer) {
	if !c.initialized {
		return
	}
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: -2})
}

func (c *Cues) Close() {
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(0)
	}
	return beep.Take(sampleRate.N(d), sine)
}
