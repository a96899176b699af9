package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/sim"
)

// lockedBuffer lets the test read output while the client may still write.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newEngine() *loop.Engine {
	s := sim.New(sim.Options{
		Tuning: config.Tuning{PowerUpDurationMs: 60000},
		Rand:   rand.New(rand.NewSource(1)),
	})
	return loop.NewEngine(s, loop.EngineOptions{Logger: log.New(io.Discard)})
}

func size() (int, int, error) { return 80, 30, nil }

func TestClientQuitsOnKey(t *testing.T) {
	engine := newEngine()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	out := &lockedBuffer{}
	pr, pw := io.Pipe()
	c := NewClient(engine, bufio.NewReader(pr), out, ClientOptions{TermSizeFunc: size, Logger: log.New(io.Discard)})

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	_, _ = pw.Write([]byte("\r"))
	deadline := time.Now().Add(2 * time.Second)
	for engine.Snapshot().State.Phase != sim.PhasePlaying {
		if time.Now().After(deadline) {
			t.Fatal("start key never reached the engine")
		}
		time.Sleep(2 * time.Millisecond)
	}

	_, _ = pw.Write([]byte("q"))
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client did not stop on quit")
	}
	pw.Close()

	select {
	case <-engine.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("quit was not forwarded to the engine")
	}
	if !strings.Contains(out.String(), "SCORE") {
		t.Fatal("no frame rendered")
	}
}

func TestClientStopsWhenEngineStops(t *testing.T) {
	engine := newEngine()
	ctx, cancel := context.WithCancel(context.Background())
	go engine.Run(ctx)
	cancel()
	<-engine.Done()

	pr, _ := io.Pipe()
	c := NewClient(engine, bufio.NewReader(pr), io.Discard, ClientOptions{TermSizeFunc: size, Logger: log.New(io.Discard)})
	if err := c.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestIdleTerminalPausesThenDisconnects(t *testing.T) {
	engine := newEngine()
	go engine.Run(context.Background())
	engine.Send(loop.Action{Kind: loop.ActionStart})

	deadline := time.Now().Add(2 * time.Second)
	for engine.Snapshot().State.Phase != sim.PhasePlaying {
		if time.Now().After(deadline) {
			t.Fatal("engine never started")
		}
		time.Sleep(2 * time.Millisecond)
	}

	pr, _ := io.Pipe()
	c := NewClient(engine, bufio.NewReader(pr), io.Discard, ClientOptions{
		TermSizeFunc: size,
		Logger:       log.New(io.Discard),
		IdleTimeout:  time.Minute,
	})

	start := c.lastInput
	if c.processInput(start.Add(50 * time.Second)) {
		t.Fatal("disconnected before the warning period")
	}
	if c.processInput(start.Add(50*time.Second + time.Millisecond)) {
		t.Fatal("disconnected during the warning period")
	}

	deadline = time.Now().Add(2 * time.Second)
	for !engine.Snapshot().State.IsPaused() {
		if time.Now().After(deadline) {
			t.Fatal("idle session was not paused")
		}
		time.Sleep(2 * time.Millisecond)
	}

	if !c.processInput(start.Add(2 * time.Minute)) {
		t.Fatal("idle terminal not disconnected")
	}
	select {
	case <-engine.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("engine still running after idle disconnect")
	}
}
