// Package audio maps gameplay events to synthesized sound effects. Tones are
// generated directly as beep streamers; there are no sample assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveShape selects the oscillator wave.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
)

// tone is a finite streamer producing one note with a linear fade-out so
// short blips do not click.
type tone struct {
	freq     float64
	phase    float64
	amp      float64
	wave     waveShape
	total    int
	position int
	rate     beep.SampleRate
}

// newTone creates a note of the given frequency and duration.
func newTone(freq float64, d time.Duration, wave waveShape, amp float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		amp:   amp,
		wave:  wave,
		total: rate.N(d),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (t.phase - 0.5)
		}

		// Fade the tail to zero.
		envelope := 1 - float64(t.position)/float64(t.total)
		val *= t.amp * envelope

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
