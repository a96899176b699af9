// Package sound turns the simulation's symbolic cues into short synthesised
// effects. Playback is fire-and-forget: nothing here reports failure to the
// caller.
package sound

// Cue names a sound the simulation wants played.
type Cue int

const (
	Shoot Cue = iota
	Explosion
	Crash
	GameOver
	Victory
	Hit
	PowerUp
	cueCount
)

var cueNames = [...]string{
	Shoot:     "shoot",
	Explosion: "explosion",
	Crash:     "crash",
	GameOver:  "gameOver",
	Victory:   "victory",
	Hit:       "hit",
	PowerUp:   "powerUp",
}

// String returns the cue's symbolic name.
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Sink receives cues. Implementations must not block and must swallow their
// own failures.
type Sink interface {
	Play(cue Cue)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(cue Cue)

// Play calls f(cue).
func (f SinkFunc) Play(cue Cue) { f(cue) }

// Discard is a Sink that drops every cue.
var Discard Sink = SinkFunc(func(Cue) {})
