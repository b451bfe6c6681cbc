package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	pongdebug "github.com/lixenwraith/vi-pong/debug"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/menu"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/pong"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		return err
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.StatsView {
		pongdebug.LaunchStats(os.Stderr)
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: ensure terminal is reset even if the game crashes
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.Debug)
	opts.Presenter = renderer
	opts.Status = status.NewRegistry()

	ctx := engine.NewContext(opts)
	cols, rows := screen.Size()
	ctx.SetViewport(cols, rows)
	renderer.Resize(cols, rows)

	sched := engine.NewScheduler(cfg.Physics.TickRate, cfg.Physics.MaxCatchUp, ctx.Status)
	pong.Register(ctx, sched)
	menu.Register(ctx, sched)

	// Audio degrades to silence when the device is unavailable
	sounds := audio.NewSoundManager(cfg.AudioSettings())
	sounds.SetMetric(ctx.Status.Bools.Get(status.KeyMuted))
	sounds.LoadOverrides()
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(cfg.Mute)
	sched.AddFrame(audio.NewAudioSystem(sounds))

	if err := ctx.Start(); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	log.Printf("started: %dx%d cells, systems %v", cols, rows, sched.Systems())

	loopErr := loop(ctx, sched, screen, renderer, sounds)

	if cfg.DumpSession != "" {
		if err := pongdebug.DumpGraphFile(cfg.DumpSession, ctx.Score, ctx.Bindings, ctx.Physics); err != nil {
			log.Printf("dump: %v", err)
		}
	}
	return loopErr
}

// loop drives frames at a fixed render cadence until a quit is requested
func loop(ctx *engine.Context, sched *engine.Scheduler, screen tcell.Screen, renderer *render.TerminalRenderer, sounds *audio.SoundManager) error {
	events := make(chan tcell.Event, parameter.EventPollBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	timer := engine.NewFrameTimer(ctx.Clock, parameter.MaxFrameDelta)

	for !ctx.Quitting() {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("terminal closed")
			}
			handleEvent(ctx, renderer, sounds, ev)

		case <-ticker.C:
			sched.Frame(ctx, timer.Tick())
			renderer.RenderFrame(ctx)
		}
	}
	log.Printf("quit after %d frames, %d ticks", ctx.Frame, ctx.Tick)
	for _, line := range ctx.Status.Dump() {
		log.Printf("metric %s", line)
	}
	return nil
}

func handleEvent(ctx *engine.Context, renderer *render.TerminalRenderer, sounds *audio.SoundManager, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ctx.RequestQuit()
			return
		case tcell.KeyF2:
			log.Printf("audio: muted=%v", sounds.ToggleMute())
			return
		}
		ctx.Input.Feed(input.KeyFromEvent(ev), ctx.Clock.Now())

	case *tcell.EventResize:
		cols, rows := ev.Size()
		ctx.SetViewport(cols, rows)
		renderer.Resize(cols, rows)
		return
	}

	awaiting := ctx.Remap != nil && ctx.Remap.Awaiting
	if action, ok := renderer.HandleEvent(ev, awaiting); ok {
		menu.Dispatch(ctx, action)
	}
}
