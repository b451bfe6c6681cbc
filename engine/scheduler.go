package engine

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// Scheduler runs systems in declared order once per frame
// Fixed systems run on a fixed-timestep sub-loop decoupled from the frame rate, frame systems run once per frame
type Scheduler struct {
	fixed []System
	frame []System

	step        time.Duration
	maxCatchUp  int
	accumulator time.Duration

	// Cached metric pointers
	statTicks   *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
	statMode    *status.AtomicString
}

// NewScheduler creates a scheduler stepping tickRate fixed ticks per second
func NewScheduler(tickRate, maxCatchUp int, reg *status.Registry) *Scheduler {
	if tickRate <= 0 {
		tickRate = parameter.PhysicsTickRate
	}
	if maxCatchUp <= 0 {
		maxCatchUp = parameter.MaxCatchUpSteps
	}
	return &Scheduler{
		step:        time.Second / time.Duration(tickRate),
		maxCatchUp:  maxCatchUp,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statDropped: reg.Ints.Get(status.KeyDroppedSteps),
		statMode:    reg.Strings.Get(status.KeyMode),
	}
}

// Step returns the fixed timestep
func (s *Scheduler) Step() time.Duration {
	return s.step
}

// AddFixed registers a system on the fixed-timestep sub-loop
func (s *Scheduler) AddFixed(sys System) {
	s.fixed = insertSorted(s.fixed, sys)
}

// AddFrame registers a system on the per-frame loop
func (s *Scheduler) AddFrame(sys System) {
	s.frame = insertSorted(s.frame, sys)
}

// insertSorted keeps registration order among equal priorities
func insertSorted(list []System, sys System) []System {
	i := len(list)
	for i > 0 && list[i-1].Priority() > sys.Priority() {
		i--
	}
	return slices.Insert(list, i, sys)
}

// Frame advances the simulation by dt of real time
//  1. Apply the pending session transition (barrier)
//  2. Run as many fixed ticks as dt allows, draining collisions after each
//  3. Run frame systems
//  4. Drain frame events and end the input frame
func (s *Scheduler) Frame(ctx *Context, dt time.Duration) {
	ctx.Session.Apply(ctx)
	s.statMode.Store(ctx.Session.Active().String())

	ctx.Actions = ctx.Input.Actions(ctx.Bindings, ctx.Clock.Now())

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.step {
		if steps == s.maxCatchUp {
			// Drop the backlog instead of spiralling
			s.statDropped.Add(int64(s.accumulator / s.step))
			s.accumulator = 0
			break
		}
		s.accumulator -= s.step
		s.runFixed(ctx)
		steps++
	}

	for _, sys := range s.frame {
		if ctx.Session.Runs(sys.Sets()) {
			sys.Update(ctx)
		}
	}

	ctx.Events.Clear()
	ctx.Input.EndFrame()
	ctx.Frame++
	s.statFrames.Store(ctx.Frame)
}

// runFixed executes one fixed tick
func (s *Scheduler) runFixed(ctx *Context) {
	for _, sys := range s.fixed {
		if ctx.Session.Runs(sys.Sets()) {
			sys.Update(ctx)
		}
	}
	ctx.Collisions.Clear()
	ctx.Tick++
	s.statTicks.Store(ctx.Tick)
}

// Systems returns the registered system names in execution order, fixed loop first
func (s *Scheduler) Systems() []string {
	names := make([]string, 0, len(s.fixed)+len(s.frame))
	for _, sys := range s.fixed {
		names = append(names, sys.Name())
	}
	for _, sys := range s.frame {
		names = append(names, sys.Name())
	}
	return names
}
