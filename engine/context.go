package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/ui"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Options configures a new Context; zero fields take defaults
type Options struct {
	Difficulty game.Difficulty
	SpeedUp    game.SpeedUpPolicy
	WinScore   uint32
	Bindings   *input.Bindings

	HoldWindow   time.Duration
	RepeatWindow time.Duration

	Presenter ui.Presenter
	Clock     Clock
	Status    *status.Registry
}

// Context holds every resource systems read and write, passed explicitly to each system
// All fields are owned by the main loop goroutine
type Context struct {
	// ===== Session =====

	Session *session.Machine[*Context]

	// ===== Global Resources =====
	// Written by menu dispatch and gameplay systems, persist across play sessions

	Score      *game.Score
	Difficulty game.Difficulty
	SpeedUp    game.SpeedUpPolicy
	WinScore   uint32 // 0 disables the match limit

	Bindings *input.Bindings
	// Remap is the remap holder, nil outside the Controls screen
	Remap *input.RemapRequest

	// ===== Input =====

	Input   *input.State
	Actions input.ActionState // Refreshed at the start of every frame

	// ===== Simulation =====

	Physics    *physics.World
	Collisions *event.CollisionQueue // Drained after every fixed tick
	Events     *event.EventQueue     // Drained at the end of every frame

	// Viewport is the world size in world units, updated on terminal resize
	Viewport vmath.Vec2
	// Field is the world size the live board was built for, zero outside Playing
	Field vmath.Vec2

	// ===== Collaborators =====

	Presenter ui.Presenter
	Clock     Clock
	Status    *status.Registry

	// ===== Counters =====

	Frame int64 // Variable-rate frame counter
	Tick  int64 // Fixed-rate simulation tick counter

	quit bool
}

// NewContext creates a context with a fresh session machine in Main
// Hooks must be registered on Session before Start
func NewContext(opts Options) *Context {
	if opts.Bindings == nil {
		opts.Bindings = input.DefaultBindings()
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	collisions := event.NewCollisionQueue(parameter.CollisionQueueSize)

	return &Context{
		Session:    session.New[*Context](),
		Score:      &game.Score{},
		Difficulty: opts.Difficulty,
		SpeedUp:    opts.SpeedUp,
		WinScore:   opts.WinScore,
		Bindings:   opts.Bindings,
		Input:      input.NewState(opts.HoldWindow, opts.RepeatWindow),
		Physics:    physics.NewWorld(collisions),
		Collisions: collisions,
		Events:     event.NewEventQueue(),
		Viewport: vmath.V2(
			parameter.MinViewportCols*parameter.CellWidth,
			parameter.MinViewportRows*parameter.CellHeight,
		),
		Presenter: opts.Presenter,
		Clock:     opts.Clock,
		Status:    opts.Status,
	}
}

// Start enters the initial session mode
func (ctx *Context) Start() error {
	return ctx.Session.Init(ctx)
}

// Emit pushes a game event stamped with the current frame
func (ctx *Context) Emit(t event.EventType, payload any) {
	ctx.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: ctx.Frame})
}

// RequestQuit asks the main loop to exit after the current frame
func (ctx *Context) RequestQuit() {
	ctx.quit = true
}

// Quitting reports whether a quit was requested
func (ctx *Context) Quitting() bool {
	return ctx.quit
}

// SetViewport updates the world size from terminal cells, clamped to the minimum playable size
func (ctx *Context) SetViewport(cols, rows int) {
	cols = max(cols, parameter.MinViewportCols)
	rows = max(rows, parameter.MinViewportRows)
	ctx.Viewport = vmath.V2(float64(cols*parameter.CellWidth), float64(rows*parameter.CellHeight))
}
