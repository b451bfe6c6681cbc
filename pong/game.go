package pong

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Game wires the play session into the session machine and the scheduler
type Game struct {
	play *Session

	// stepSeconds is the fixed physics step
	stepSeconds float64

	// Cached metric pointers
	statPoints     *atomic.Int64
	statBalls      *atomic.Int64
	statCollisions *atomic.Int64
	statBodies     *atomic.Int64
	statBallSpeed  *status.AtomicFloat
}

// Register installs the Playing hooks and the gameplay systems
func Register(ctx *engine.Context, sched *engine.Scheduler) *Game {
	g := &Game{
		stepSeconds:    sched.Step().Seconds(),
		statPoints:     ctx.Status.Ints.Get(status.KeyPoints),
		statBalls:      ctx.Status.Ints.Get(status.KeyBallsSpawned),
		statCollisions: ctx.Status.Ints.Get(status.KeyCollisions),
		statBodies:     ctx.Status.Ints.Get(status.KeyBodies),
		statBallSpeed:  ctx.Status.Floats.Get(status.KeyBallSpeed),
	}

	ctx.Session.OnEnterMode(session.ModePlaying, g.setup)
	ctx.Session.OnExitMode(session.ModePlaying, g.teardown)

	sched.AddFixed(&PaddleSystem{game: g})
	sched.AddFixed(&PhysicsSystem{game: g})
	sched.AddFixed(&BallSystem{game: g})
	sched.AddFixed(&ScoringSystem{game: g})
	sched.AddFrame(&ScoreDisplaySystem{game: g})
	return g
}

// Session returns the live play session, nil outside Playing
func (g *Game) Session() *Session {
	return g.play
}

// mustSession returns the play session; systems gated on Playing never see nil
func (g *Game) mustSession() *Session {
	if g.play == nil {
		panic("pong: gameplay system ran without a play session")
	}
	return g.play
}

func (g *Game) setup(ctx *engine.Context) {
	ctx.Score.Reset()
	if g.play != nil {
		g.play.Despawn()
	}
	g.play = Spawn(ctx.Physics, ctx.Viewport)
	ctx.Field = g.play.Viewport

	g.play.Scoreboard.Text = ctx.Score.DisplayText()
	g.play.shownVersion = ctx.Score.Version()
	if ctx.Presenter != nil {
		ctx.Presenter.ShowScore(g.play.Scoreboard.Text)
	}

	g.statBalls.Add(1)
	g.statBodies.Store(int64(ctx.Physics.Len()))
	ctx.Emit(event.EventSessionStarted, nil)
	ctx.Emit(event.EventBallSpawned, nil)
	log.Printf("pong: session started, viewport %.0fx%.0f, difficulty %s", ctx.Viewport.X, ctx.Viewport.Y, ctx.Difficulty)
}

func (g *Game) teardown(ctx *engine.Context) {
	if g.play != nil {
		g.play.Despawn()
		g.play = nil
	}
	ctx.Field = vmath.Vec2{}
	if ctx.Presenter != nil {
		ctx.Presenter.ShowScore("")
	}
	ctx.Collisions.Clear()
	g.statBodies.Store(int64(ctx.Physics.Len()))
	ctx.Emit(event.EventSessionEnded, nil)
	log.Printf("pong: session ended at %s", ctx.Score.DisplayText())
}
