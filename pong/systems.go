package pong

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/vmath"
)

// PaddleSystem queues both paddle translations for the next physics step
type PaddleSystem struct {
	game *Game
}

func (s *PaddleSystem) Name() string      { return "paddle" }
func (s *PaddleSystem) Priority() int     { return parameter.PriorityPaddle }
func (s *PaddleSystem) Sets() session.Set { return session.SetPlaying }

func (s *PaddleSystem) Update(ctx *engine.Context) {
	play := s.game.mustSession()
	ball := play.Ball()

	human := play.MustBody(RolePaddlePlayer)
	ctx.Physics.SetTranslation(human.ID, HumanTranslation(ctx.Actions.Axis()))

	computer := play.MustBody(RolePaddleComputer)
	ctx.Physics.SetTranslation(computer.ID, ComputerTranslation(computer.Pos, ball.Pos, ctx.Difficulty))
}

// PhysicsSystem advances the physics world one fixed step
type PhysicsSystem struct {
	game *Game
}

func (s *PhysicsSystem) Name() string      { return "physics" }
func (s *PhysicsSystem) Priority() int     { return parameter.PriorityPhysics }
func (s *PhysicsSystem) Sets() session.Set { return session.SetPlaying }

func (s *PhysicsSystem) Update(ctx *engine.Context) {
	before := ctx.Collisions.Len()
	ctx.Physics.Step(s.game.stepSeconds)
	s.game.statCollisions.Add(int64(ctx.Collisions.Len() - before))
}

// BallSystem applies speed-up and paddle bounce for this tick's contact starts
type BallSystem struct {
	game *Game
}

func (s *BallSystem) Name() string      { return "ball" }
func (s *BallSystem) Priority() int     { return parameter.PriorityBall }
func (s *BallSystem) Sets() session.Set { return session.SetPlaying }

func (s *BallSystem) Update(ctx *engine.Context) {
	play := s.game.mustSession()
	ball := play.Ball()

	for _, c := range ctx.Collisions.Events() {
		if c.Phase != event.CollisionStarted || !c.Involves(ball.ID) {
			continue
		}
		other := c.Other(ball.ID)
		role, ok := play.Role(other)
		if !ok || role.IsZone() {
			continue
		}

		if ctx.SpeedUp == game.SpeedUpAll || role.IsPaddle() {
			ball.Vel = SpeedUp(ball.Vel)
		}

		if !role.IsPaddle() {
			ctx.Emit(event.EventWallHit, nil)
			continue
		}

		paddle := play.MustBody(role)
		offset := HitOffset(ball.Pos.Y, paddle.Pos.Y)
		away := vmath.Sign(ball.Pos.X - paddle.Pos.X)
		if away == 0 {
			away = -vmath.Sign(c.ImpactVel.X)
		}
		ball.Vel = PaddleBounce(ball.Vel, offset, away)
		ctx.Emit(event.EventPaddleHit, &event.PaddleHitPayload{Offset: offset, Speed: vmath.V2Mag(ball.Vel)})
	}

	s.game.statBallSpeed.Set(vmath.V2Mag(ball.Vel))
}

// ScoringSystem credits a point when the ball enters a zone, then replaces the ball in the same tick
type ScoringSystem struct {
	game *Game
}

func (s *ScoringSystem) Name() string      { return "scoring" }
func (s *ScoringSystem) Priority() int     { return parameter.PriorityScoring }
func (s *ScoringSystem) Sets() session.Set { return session.SetPlaying }

func (s *ScoringSystem) Update(ctx *engine.Context) {
	play := s.game.mustSession()
	ballID := play.Ball().ID

	for _, c := range ctx.Collisions.Events() {
		if c.Phase != event.CollisionStarted || !c.Sensor || !c.Involves(ballID) {
			continue
		}
		role, ok := play.Role(c.Other(ballID))
		if !ok {
			continue
		}
		side, ok := role.ScoringSide()
		if !ok {
			continue
		}

		ctx.Score.AddPoint(side)
		play.RespawnBall()
		s.game.statPoints.Add(1)
		s.game.statBalls.Add(1)

		payload := &event.PointScoredPayload{Side: uint8(side), Left: ctx.Score.Left(), Right: ctx.Score.Right()}
		ctx.Emit(event.EventPointScored, payload)
		ctx.Emit(event.EventBallSpawned, nil)

		if ctx.WinScore > 0 && ctx.Score.Points(side) >= ctx.WinScore {
			ctx.Emit(event.EventMatchWon, payload)
			ctx.Session.RequestMode(session.ModeMain)
		}
		// Remaining contacts belong to the destroyed ball
		return
	}
}

// ScoreDisplaySystem pushes the score text only when the ledger changed
type ScoreDisplaySystem struct {
	game *Game
}

func (s *ScoreDisplaySystem) Name() string      { return "score-display" }
func (s *ScoreDisplaySystem) Priority() int     { return parameter.PriorityScoreDisplay }
func (s *ScoreDisplaySystem) Sets() session.Set { return session.SetPlaying }

func (s *ScoreDisplaySystem) Update(ctx *engine.Context) {
	play := s.game.mustSession()
	if ctx.Score.Version() == play.shownVersion {
		return
	}
	play.shownVersion = ctx.Score.Version()
	play.Scoreboard.Text = ctx.Score.DisplayText()
	if ctx.Presenter != nil {
		ctx.Presenter.ShowScore(play.Scoreboard.Text)
	}
}
