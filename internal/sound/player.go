package sound

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Player mixes cue effects into a single stream. It is itself a beep.Streamer:
// hand it to an output device once (speaker.Play(p)) and call Play for every cue.
// Without an output nothing ever drains the mixer, so Play only queues.
type Player struct {
	rate  beep.SampleRate
	mu    sync.Mutex // Guards mixer between Play and the output goroutine
	mixer beep.Mixer
	muted atomic.Bool

	// maxVoices bounds simultaneous effects so a burst of cues cannot pile up.
	maxVoices int
}

// NewPlayer creates a player synthesising at rate.
func NewPlayer(rate beep.SampleRate) *Player {
	return &Player{
		rate:      rate,
		maxVoices: 16,
	}
}

// Play queues the cue. Unknown cues, a muted player and a full mixer are silently ignored.
func (p *Player) Play(cue Cue) {
	if p == nil || p.muted.Load() {
		return
	}
	s := Synthesize(cue, p.rate)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mixer.Len() >= p.maxVoices {
		return
	}
	p.mixer.Add(s)
}

// ToggleMute flips mute state and reports whether sound is now enabled.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	if muted {
		p.mu.Lock()
		p.mixer.Clear()
		p.mu.Unlock()
	}
	return !muted
}

// Active returns the number of effects still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream implements beep.Streamer. It never drains: silence is produced when idle.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

// Err implements beep.Streamer. Effect errors are dropped.
func (p *Player) Err() error { return nil }

// Compile-time checks.
var (
	_ Sink          = (*Player)(nil)
	_ beep.Streamer = (*Player)(nil)
)
