package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
)

func kinds(actions []loop.Action) []loop.ActionKind {
	out := make([]loop.ActionKind, len(actions))
	for i, a := range actions {
		out[i] = a.Kind
	}
	return out
}

func equalKinds(a, b []loop.ActionKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecodeKeys(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []loop.ActionKind
	}{
		"enter starts":     {"\r", []loop.ActionKind{loop.ActionStart}},
		"space fires":      {" ", []loop.ActionKind{loop.ActionFire}},
		"letters move":     {"ad", []loop.ActionKind{loop.ActionLeft, loop.ActionRight}},
		"arrows move":      {"\x1b[D\x1b[C", []loop.ActionKind{loop.ActionLeft, loop.ActionRight}},
		"up arrow ignored": {"\x1b[A", nil},
		"pause":            {"p", []loop.ActionKind{loop.ActionTogglePause}},
		"restart":          {"r", []loop.ActionKind{loop.ActionRestart}},
		"mute":             {"m", []loop.ActionKind{loop.ActionToggleMute}},
		"quit":             {"q", []loop.ActionKind{loop.ActionQuit}},
		"ctrl-c quits":     {"\x03", []loop.ActionKind{loop.ActionQuit}},
		"unknown ignored":  {"xyz0", nil},
		"bare escape":      {"\x1ba", []loop.ActionKind{loop.ActionLeft}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := kinds(Decode([]byte(tt.in)))
			if !equalKinds(got, tt.want) {
				t.Fatalf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeColorKeys(t *testing.T) {
	got := Decode([]byte("19"))
	if len(got) != 2 {
		t.Fatalf("got %d actions, want 2", len(got))
	}
	if got[0].Kind != loop.ActionSelectColor || got[0].Color != object.PlayerColors[1] {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].Color != object.PlayerColors[9] {
		t.Fatalf("second = %+v", got[1])
	}
}

func TestDecoderJoinsSplitEscape(t *testing.T) {
	var d Decoder
	if got := d.Feed([]byte("\x1b")); len(got) != 0 {
		t.Fatalf("partial sequence decoded to %v", kinds(got))
	}
	if got := d.Feed([]byte("[")); len(got) != 0 {
		t.Fatalf("partial sequence decoded to %v", kinds(got))
	}
	got := kinds(d.Feed([]byte("D ")))
	want := []loop.ActionKind{loop.ActionLeft, loop.ActionFire}
	if !equalKinds(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStreamQuitsAtEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	var all []loop.Action
	deadline := time.Now().Add(2 * time.Second)
	for !s.closed {
		if time.Now().After(deadline) {
			t.Fatal("stream never closed")
		}
		all = append(all, s.Actions()...)
		time.Sleep(time.Millisecond)
	}

	got := kinds(all)
	want := []loop.ActionKind{loop.ActionFire, loop.ActionQuit}
	if !equalKinds(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStreamStopsAfterClose(t *testing.T) {
	// More bytes than the channel holds, never drained.
	s := StartStream(bufio.NewReader(strings.NewReader(strings.Repeat(" ", 1000))))
	s.Close()
	s.Close()

	select {
	case <-s.finished:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still blocked after Close")
	}
}
