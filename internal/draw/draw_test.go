package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/sim"
)

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#FF8000")
	if !ok {
		t.Fatal("valid color rejected")
	}
	if r, g, b := c.Components(); r != 255 || g != 128 || b != 0 {
		t.Fatalf("components = %d,%d,%d", r, g, b)
	}
	if !c.IsSet() {
		t.Fatal("parsed black-ish color reported unset")
	}

	black, ok := ParseColor("#000000")
	if !ok || !black.IsSet() {
		t.Fatal("black must still be a set pixel")
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "red"} {
		if _, ok := ParseColor(bad); ok {
			t.Fatalf("ParseColor(%q) accepted", bad)
		}
	}
}

func TestColorScale(t *testing.T) {
	c := RGB(200, 100, 50).Scale(0.5)
	if r, g, b := c.Components(); r != 100 || g != 50 || b != 25 {
		t.Fatalf("scaled = %d,%d,%d", r, g, b)
	}
	if RGB(10, 10, 10).Scale(-1) != RGB(0, 0, 0) {
		t.Fatal("negative scale not clamped")
	}
}

func TestCanvasRendersOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	red := RGB(255, 0, 0)
	c.SetFloat(2, 2, red)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.Contains(first.String(), "38;2;255;0;0") {
		t.Fatalf("first render missing pixel color: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged canvas rendered %d bytes", second.Len())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if third.Len() == 0 {
		t.Fatal("cleared pixel was not erased")
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	blue := RGB(0, 0, 255)
	c.DrawPolygon([]Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}, blue, true)

	if c.At(10, 10) != blue {
		t.Fatal("polygon interior not filled")
	}
	if c.At(1, 1).IsSet() {
		t.Fatal("pixel outside polygon set")
	}
}

func TestCanvasShift(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	white := RGB(255, 255, 255)
	c.Shift(3, 0)
	c.SetFloat(5, 5, white)
	if c.At(8, 5) != white || c.At(5, 5).IsSet() {
		t.Fatal("shift not applied")
	}
}

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestRendererDrawsSnapshot(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, fixedSize(100, 51))

	snap := &sim.Snapshot{
		State:  sim.GameState{Phase: sim.PhasePlaying, Score: 120, Level: 3, Stars: 2},
		Player: object.NewPlayer("#FF0000"),
		Enemies: []object.Enemy{
			{X: 300, Y: 100, Size: 30, Color: "#00FF00", Shape: object.Square},
		},
	}
	if err := r.Render(snap); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "SCORE 120") {
		t.Fatal("HUD missing score")
	}

	// 100 columns for 600 units: the enemy center maps to pixel (50, 17).
	c := r.Canvas()
	if c.At(50, 17) != MustColor("#00FF00") {
		t.Fatalf("enemy pixel = %06x", uint32(c.At(50, 17)))
	}
	px, py := 50, 92 // player center at (300, 550)
	if c.At(px, py) != MustColor("#FF0000") {
		t.Fatalf("player pixel = %06x", uint32(c.At(px, py)))
	}
}

func TestRendererOverlays(t *testing.T) {
	tests := map[sim.Phase]string{
		sim.PhaseIdle:     "S K Y R A I D",
		sim.PhasePaused:   "PAUSED",
		sim.PhaseGameOver: "GAME OVER",
		sim.PhaseVictory:  "VICTORY",
	}

	for phase, want := range tests {
		t.Run(phase.String(), func(t *testing.T) {
			var out bytes.Buffer
			r := NewRenderer(&out, fixedSize(80, 30))
			snap := &sim.Snapshot{State: sim.GameState{Phase: phase, Level: 1}, Player: object.NewPlayer("")}
			if err := r.Render(snap); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), want) {
				t.Fatalf("overlay missing %q", want)
			}
		})
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abc", 5); got != "abc  " {
		t.Fatalf("pad = %q", got)
	}
	if got := fitWidth("abcdef", 3); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
}
