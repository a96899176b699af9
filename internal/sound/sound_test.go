package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -2 || buf[i][0] > 2 {
				t.Fatalf("sample out of range: %f", buf[i][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return total
}

func TestCueNames(t *testing.T) {
	want := map[Cue]string{
		Shoot: "shoot", Explosion: "explosion", Crash: "crash", GameOver: "gameOver",
		Victory: "victory", Hit: "hit", PowerUp: "powerUp",
	}
	for cue, name := range want {
		if cue.String() != name {
			t.Errorf("%d.String() = %q, want %q", cue, cue.String(), name)
		}
	}
	if Cue(99).String() != "unknown" {
		t.Error("out-of-range cue must be unknown")
	}
}

func TestSynthesizeEveryCueIsFinite(t *testing.T) {
	for cue := Shoot; cue < cueCount; cue++ {
		s := Synthesize(cue, SampleRate)
		if s == nil {
			t.Fatalf("no streamer for %s", cue)
		}
		n := drain(t, s, SampleRate.N(2*time.Second))
		if n == 0 {
			t.Errorf("%s produced no samples", cue)
		}
	}
	if Synthesize(Cue(-1), SampleRate) != nil {
		t.Error("invalid cue must not synthesise")
	}
}

func TestFasterCuesAreShorter(t *testing.T) {
	shoot := drain(t, Synthesize(Shoot, SampleRate), SampleRate.N(time.Second))
	power := drain(t, Synthesize(PowerUp, SampleRate), SampleRate.N(time.Second))
	if power >= shoot {
		t.Fatalf("powerUp (2x rate) should be shorter than shoot: %d vs %d", power, shoot)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	d := 50 * time.Millisecond
	s := NewEnvelope(NewOscillator(440, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, 4)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("first sample should be silent under attack, got %f", buf[0][0])
	}
}

func TestPlayerQueuesAndMutes(t *testing.T) {
	p := NewPlayer(SampleRate)
	p.Play(Shoot)
	p.Play(Hit)
	if p.Active() != 2 {
		t.Fatalf("active = %d, want 2", p.Active())
	}

	if p.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	if p.Active() != 0 {
		t.Fatal("muting must clear queued effects")
	}
	p.Play(Explosion)
	if p.Active() != 0 {
		t.Fatal("muted player must ignore cues")
	}
	if !p.ToggleMute() {
		t.Fatal("second toggle should unmute")
	}
}

func TestPlayerBoundsVoices(t *testing.T) {
	p := NewPlayer(SampleRate)
	for i := 0; i < 40; i++ {
		p.Play(Crash)
	}
	if p.Active() != p.maxVoices {
		t.Fatalf("active = %d, want %d", p.Active(), p.maxVoices)
	}
}

func TestPlayerStreamsSilenceWhenIdle(t *testing.T) {
	p := NewPlayer(SampleRate)
	buf := make([][2]float64, 64)
	n, ok := p.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("idle player must keep streaming, got n=%d ok=%v", n, ok)
	}

	var nilPlayer *Player
	nilPlayer.Play(Shoot) // must not panic
}
