// Package client connects a terminal to an Engine: it forwards decoded key
// presses and renders the engine's snapshots at a fixed frame rate.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/sim"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	engine      *loop.Engine
	renderer    *draw.Renderer
	inputStream *input.Stream
	writer      io.Writer
	logger      *log.Logger

	frameTime   time.Duration
	idleWarn    time.Duration
	idleTimeout time.Duration
	lastInput   time.Time
	warned      bool
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	// IdleTimeout disconnects a terminal with no key presses for that long.
	// Zero disables it.
	IdleTimeout time.Duration
}

// NewClient creates a client for engine reading keys from r and drawing to w.
func NewClient(engine *loop.Engine, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	idleWarn := time.Duration(0)
	if opts.IdleTimeout > 0 {
		idleWarn = opts.IdleTimeout * config.InactivityWarnUser / config.InactivityDisconnectUser
	}

	return &Client{
		engine:      engine,
		renderer:    draw.NewRenderer(w, opts.TermSizeFunc),
		inputStream: input.StartStream(r),
		writer:      w,
		logger:      logger,
		frameTime:   config.ClientTargetFrameTime,
		idleWarn:    idleWarn,
		idleTimeout: opts.IdleTimeout,
		lastInput:   time.Now(),
	}
}

// Run forwards input and draws frames until the player quits, the engine
// stops, ctx is cancelled or the idle timeout passes.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)
	defer c.inputStream.Close()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		case <-c.engine.Done():
			return nil
		default:
		}

		if quit := c.processInput(frameStart); quit {
			return nil
		}

		if err := c.renderer.Render(c.engine.Snapshot()); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < c.frameTime {
			time.Sleep(c.frameTime - elapsed)
		}
	}
}

// processInput forwards decoded actions to the engine. Returns true when the
// client should stop.
func (c *Client) processInput(now time.Time) bool {
	actions := c.inputStream.Actions()
	if len(actions) > 0 {
		c.lastInput = now
		c.warned = false
	}

	for _, a := range actions {
		c.engine.Send(a)
		if a.Kind == loop.ActionQuit {
			return true
		}
	}

	if c.idleTimeout <= 0 {
		return false
	}
	idle := now.Sub(c.lastInput)
	if idle > c.idleTimeout {
		c.logger.Info("disconnecting idle terminal", "idle", idle.Round(time.Second))
		c.engine.Send(loop.Action{Kind: loop.ActionQuit})
		return true
	}
	if idle > c.idleWarn && !c.warned {
		c.warned = true
		c.logger.Debug("terminal idle", "idle", idle.Round(time.Second))
		if snap := c.engine.Snapshot(); snap.State.Phase == sim.PhasePlaying {
			c.engine.Send(loop.Action{Kind: loop.ActionTogglePause})
		}
	}
	return false
}
