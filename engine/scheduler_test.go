package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/status"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(Options{
		Clock:  NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Status: status.NewRegistry(),
	})
	if err := ctx.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return ctx
}

func recorder(name string, prio int, sets session.Set, out *[]string) System {
	return SystemFunc{
		SystemName:     name,
		SystemPriority: prio,
		SystemSets:     sets,
		Fn:             func(*Context) { *out = append(*out, name) },
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(64, 8, ctx.Status)
	var calls []string

	s.AddFrame(recorder("c", 30, session.SetAll, &calls))
	s.AddFrame(recorder("a", 10, session.SetAll, &calls))
	s.AddFrame(recorder("b1", 20, session.SetAll, &calls))
	s.AddFrame(recorder("b2", 20, session.SetAll, &calls))

	s.Frame(ctx, 0)
	want := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if !reflect.DeepEqual(s.Systems(), want) {
		t.Errorf("Systems() = %v", s.Systems())
	}
}

func TestGatingFollowsSession(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(64, 8, ctx.Status)
	var calls []string

	s.AddFrame(recorder("main", 0, session.SetMain, &calls))
	s.AddFrame(recorder("play", 1, session.SetPlaying, &calls))
	s.AddFrame(recorder("pause", 2, session.SetPaused, &calls))
	s.AddFrame(recorder("toggle", 3, session.SetPlaying|session.SetPaused, &calls))

	s.Frame(ctx, 0)
	if !reflect.DeepEqual(calls, []string{"main"}) {
		t.Errorf("Main frame calls = %v", calls)
	}

	calls = nil
	ctx.Session.RequestMode(session.ModePlaying)
	s.Frame(ctx, 0)
	if !reflect.DeepEqual(calls, []string{"play", "toggle"}) {
		t.Errorf("Playing frame calls = %v", calls)
	}

	calls = nil
	ctx.Session.RequestPause(session.PausePaused)
	s.Frame(ctx, 0)
	if !reflect.DeepEqual(calls, []string{"pause", "toggle"}) {
		t.Errorf("Paused frame calls = %v", calls)
	}
}

func TestTransitionRequestedMidFrameAppliesNextFrame(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(64, 8, ctx.Status)
	var seen []session.Mode

	s.AddFrame(SystemFunc{SystemName: "requester", SystemSets: session.SetAll, Fn: func(c *Context) {
		c.Session.RequestMode(session.ModeSettings)
	}})
	s.AddFrame(SystemFunc{SystemName: "observer", SystemPriority: 1, SystemSets: session.SetAll, Fn: func(c *Context) {
		seen = append(seen, c.Session.Mode())
	}})

	s.Frame(ctx, 0)
	s.Frame(ctx, 0)
	want := []session.Mode{session.ModeMain, session.ModeSettings}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}

func TestFixedLoopStepsAndDrainsCollisions(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(100, 8, ctx.Status)
	ticks := 0
	queued := 0

	s.AddFixed(SystemFunc{SystemName: "producer", SystemSets: session.SetPlaying, Fn: func(c *Context) {
		queued += c.Collisions.Len()
		c.Collisions.Push(event.Collision{A: 1, B: 2})
		ticks++
	}})

	ctx.Session.RequestMode(session.ModePlaying)

	// 35ms at 100Hz: 3 ticks, 5ms carried
	s.Frame(ctx, 35*time.Millisecond)
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
	if queued != 0 {
		t.Errorf("collisions leaked across ticks: %d", queued)
	}
	s.Frame(ctx, 5*time.Millisecond)
	if ticks != 4 {
		t.Errorf("carried remainder should produce a tick, ticks = %d", ticks)
	}
	if ctx.Tick != 4 {
		t.Errorf("ctx.Tick = %d, want 4", ctx.Tick)
	}
}

func TestFixedLoopCatchUpLimit(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(100, 4, ctx.Status)
	ticks := 0
	s.AddFixed(SystemFunc{SystemName: "count", SystemSets: session.SetAll, Fn: func(*Context) { ticks++ }})

	s.Frame(ctx, time.Second)
	if ticks != 4 {
		t.Errorf("ticks = %d, want capped 4", ticks)
	}
	if got := ctx.Status.Ints.Get(status.KeyDroppedSteps).Load(); got != 96 {
		t.Errorf("dropped = %d, want 96", got)
	}

	// Backlog dropped, next short frame is normal
	ticks = 0
	s.Frame(ctx, 10*time.Millisecond)
	if ticks != 1 {
		t.Errorf("ticks after drop = %d, want 1", ticks)
	}
}

func TestFrameEndsInputFrameAndClearsEvents(t *testing.T) {
	ctx := newTestContext(t)
	s := NewScheduler(64, 8, ctx.Status)

	ctx.Emit(event.EventMenuClick, nil)
	startFrame := ctx.Input.Frame()
	s.Frame(ctx, 0)

	if ctx.Events.Len() != 0 {
		t.Error("events must be drained at frame end")
	}
	if ctx.Input.Frame() != startFrame+1 || ctx.Frame != 1 {
		t.Errorf("input frame = %d, ctx frame = %d", ctx.Input.Frame(), ctx.Frame)
	}
	if got := ctx.Status.Strings.Get(status.KeyMode).Load(); got != "Main" {
		t.Errorf("mode metric = %q", got)
	}
}

func TestSetViewportClampsToMinimum(t *testing.T) {
	ctx := newTestContext(t)
	ctx.SetViewport(10, 5)
	if ctx.Viewport.X != 400 || ctx.Viewport.Y != 320 {
		t.Errorf("viewport = %v, want (400, 320)", ctx.Viewport)
	}
	ctx.SetViewport(100, 40)
	if ctx.Viewport.X != 1000 || ctx.Viewport.Y != 800 {
		t.Errorf("viewport = %v, want (1000, 800)", ctx.Viewport)
	}
}
