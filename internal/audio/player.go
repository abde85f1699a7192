package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/glidekit/flaptui/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes a sound per gameplay event. It implements
// engine.Listener; every event call only queues samples on the speaker mixer
// and returns immediately, the engine never waits on playback.
type Player struct {
	mu    sync.Mutex
	ready bool
}

// NewPlayer opens the audio device. On failure the returned error should be
// logged and sound skipped; the game runs fine with a nil listener.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Player{ready: true}, nil
}

// Close shuts the audio device down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	p.ready = false
	speaker.Close()
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Play(s)
}

// Flapped plays a short rising blip.
func (p *Player) Flapped() {
	p.play(newTone(740, 50*time.Millisecond, waveSquare, 0.15, sampleRate))
}

// Scored plays a two-note chime.
func (p *Player) Scored(int) {
	p.play(beep.Seq(
		newTone(880, 70*time.Millisecond, waveSine, 0.25, sampleRate),
		newTone(1175, 110*time.Millisecond, waveSine, 0.25, sampleRate),
	))
}

// Died plays a falling buzz, with an extra flourish on a new best.
func (p *Player) Died(_ int, newBest bool) {
	fall := beep.Seq(
		newTone(330, 120*time.Millisecond, waveSaw, 0.3, sampleRate),
		newTone(220, 180*time.Millisecond, waveSaw, 0.3, sampleRate),
		newTone(147, 260*time.Millisecond, waveSaw, 0.3, sampleRate),
	)
	if !newBest {
		p.play(fall)
		return
	}
	p.play(beep.Seq(
		fall,
		newTone(660, 90*time.Millisecond, waveSine, 0.25, sampleRate),
		newTone(880, 90*time.Millisecond, waveSine, 0.25, sampleRate),
		newTone(1320, 160*time.Millisecond, waveSine, 0.25, sampleRate),
	))
}

var _ engine.Listener = (*Player)(nil)
