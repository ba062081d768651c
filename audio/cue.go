package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	clickLength    = 40 * time.Millisecond
	defaultClickHz = 1760
)

// Cue plays short audio blips alongside playback
// All methods are safe to call when audio is unavailable
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	freq        float64
	volume      float64
	initialized bool
}

// NewCue creates a cue; call Initialize to open the speaker
func NewCue() *Cue {
	return &Cue{
		mixer:  &beep.Mixer{},
		freq:   defaultClickHz,
		volume: 0.25,
	}
}

// Initialize opens the speaker, a failure leaves the cue silent
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	// 100ms buffer keeps latency low without underruns
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// SetTone changes the click pitch and volume for subsequent clicks
func (c *Cue) SetTone(freq, volume float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if freq > 0 {
		c.freq = freq
	}
	if volume >= 0 && volume <= 1 {
		c.volume = volume
	}
}

// Click plays one short blip
func (c *Cue) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(beep.Take(sampleRate.N(clickLength), NewClickGenerator(sampleRate, c.freq, c.volume, clickLength)))
	speaker.Unlock()
}

// Cleanup silences pending clicks
func (c *Cue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, clearing the mixer stops output
	c.initialized = false
}
