package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every cue is synthesised at.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample identifies one of the base effects cues are derived from.
type sample int

const (
	sampleShoot sample = iota
	sampleExplosion
	sampleCrash
)

// recipe describes how a cue is played from a base sample.
type recipe struct {
	sample sample
	volume float64 // Linear gain, 1.0 = unchanged
	rate   float64 // Playback rate, 1.0 = unchanged
}

var recipes = [...]recipe{
	Shoot:     {sample: sampleShoot, volume: 0.3, rate: 1},
	Hit:       {sample: sampleCrash, volume: 0.3, rate: 1},
	Explosion: {sample: sampleExplosion, volume: 0.6, rate: 1},
	Crash:     {sample: sampleCrash, volume: 1.0, rate: 1},
	GameOver:  {sample: sampleCrash, volume: 1.0, rate: 1},
	Victory:   {sample: sampleShoot, volume: 0.5, rate: 1.5},
	PowerUp:   {sample: sampleShoot, volume: 0.8, rate: 2.0},
}

// oscillator generates raw audio waves.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave of the given shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		switch {
		case e.attack > 0 && e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= e.total-e.release:
			gain = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// base builds a fresh streamer for one of the base samples.
func base(s sample, rate beep.SampleRate) beep.Streamer {
	switch s {
	case sampleShoot:
		d := 120 * time.Millisecond
		return NewEnvelope(NewOscillator(660, d, WaveSquare, rate), d, 2*time.Millisecond, 90*time.Millisecond, rate)
	case sampleExplosion:
		d := 500 * time.Millisecond
		return NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 420*time.Millisecond, rate)
	default:
		d := 700 * time.Millisecond
		rumble := NewEnvelope(NewOscillator(90, d, WaveSaw, rate), d, 5*time.Millisecond, 600*time.Millisecond, rate)
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 650*time.Millisecond, rate)
		return beep.Mix(rumble, noise)
	}
}

// Synthesize returns a new, finite streamer for the cue.
func Synthesize(cue Cue, rate beep.SampleRate) beep.Streamer {
	if cue < 0 || cue >= cueCount {
		return nil
	}
	r := recipes[cue]

	s := base(r.sample, rate)
	if r.rate != 1 {
		s = beep.ResampleRatio(4, r.rate, s)
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(r.volume),
		Silent:   r.volume <= 0,
	}
}
