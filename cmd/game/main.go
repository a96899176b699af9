package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gopxl/beep/speaker"
	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/loop/client"
	"github.com/tomz197/skyraid/internal/sim"
	"github.com/tomz197/skyraid/internal/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := config.NewLogger("skyraid", "warn")
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := config.LoadTuning(config.GetEnv("SKYRAID_TUNING", ""))
	if err != nil {
		return err
	}

	player := sound.NewPlayer(sound.SampleRate)
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		speaker.Play(player)
		defer speaker.Close()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := loop.NewEngine(sim.New(sim.Options{Tuning: tuning, Sound: player}), loop.EngineOptions{
		Logger: logger,
		Mute:   player.ToggleMute,
	})
	go engine.Run(ctx)

	c := client.NewClient(engine, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{Logger: logger})
	err = c.Run(ctx)
	stop()
	<-engine.Done()
	return err
}
