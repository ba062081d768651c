package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ClickGenerator produces a sine blip with a fast attack and exponential decay
type ClickGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64
	pos    int
}

// NewClickGenerator creates a click that has mostly faded after length
func NewClickGenerator(sr beep.SampleRate, freq, volume float64, length time.Duration) *ClickGenerator {
	n := sr.N(length)
	if n < 1 {
		n = 1
	}
	return &ClickGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		// Amplitude falls to ~1% at the end of the click
		decay: math.Log(100) / float64(n),
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(2 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-g.decay * float64(g.pos))
		if p := float64(g.pos); p < attack {
			envelope *= p / attack
		}
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
