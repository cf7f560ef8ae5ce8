package game

import "github.com/vovakirdan/flappy-phoenix/internal/core"

// Tick advances the round by one frame and draws it.
// The order of the steps is fixed: background, physics, player, spawn,
// obstacles (move, draw, collide, score, retire), bounds, frame counter.
// A tick delivered while idle does nothing.
func (e *Engine) Tick() {
	if e.phase != PhaseRunning || !e.state.Running {
		return
	}

	e.drawBackground()
	e.integrate()
	e.drawPlayer()

	if e.state.FrameCount%e.cfg.Obstacles.SpawnInterval == 0 {
		e.spawnObstacle()
	}

	if e.updateObstacles() {
		e.end(EndCollision)
		return
	}

	if e.outOfBounds() {
		e.end(EndOutOfBounds)
		return
	}

	e.state.FrameCount++
	if e.state.Running {
		e.scheduler.RequestFrame(e.Tick)
	}
}

// integrate applies gravity, then moves the player by the new velocity.
func (e *Engine) integrate() {
	e.state.PlayerVelocityY += e.cfg.Physics.Gravity
	e.state.PlayerY += e.state.PlayerVelocityY
}

// playerRect is the hitbox centered on the player's fixed column.
// Rotation is cosmetic and never affects it.
func (e *Engine) playerRect() core.Rect {
	p := e.cfg.Player
	return core.RectAround(p.X, e.state.PlayerY, p.Width, p.Height)
}

// outOfBounds reports whether the player's center has left the band
// where the whole hitbox fits between ceiling and floor.
func (e *Engine) outOfBounds() bool {
	half := e.cfg.Player.Height / 2
	y := e.state.PlayerY
	return y > e.cfg.Playfield.Height-half || y < half
}

func (e *Engine) drawBackground() {
	pf := e.cfg.Playfield
	e.surface.Clear()
	e.surface.DrawImage(e.assets.Background, core.NewRect(0, 0, pf.Width, pf.Height))
}

func (e *Engine) drawPlayer() {
	p := e.cfg.Player
	e.surface.Save()
	e.surface.Translate(p.X, e.state.PlayerY)
	e.surface.Rotate(e.state.PlayerVelocityY * e.cfg.Physics.RotationFactor)
	e.surface.DrawImage(e.assets.Sprite, core.NewRect(-p.Width/2, -p.Height/2, p.Width, p.Height))
	e.surface.Restore()
}
