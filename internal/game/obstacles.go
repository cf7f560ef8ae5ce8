package game

import "math"

// spawnObstacle appends a barrier pair at the right edge of the playfield.
// The gap top is margin plus floor(u*span) for u uniform in [0, 1), where
// span is the free height left by the gap and both margins.
func (e *Engine) spawnObstacle() {
	obs := e.cfg.Obstacles
	span := e.cfg.Playfield.Height - obs.Gap - 2*obs.Margin

	gapTop := obs.Margin
	if span > 0 {
		gapTop += math.Floor(e.rng.Float64() * span)
	}

	e.state.Obstacles = append(e.state.Obstacles, Obstacle{
		X:      e.cfg.Playfield.Width,
		GapTop: gapTop,
	})
	e.logger.Debug("obstacle spawned", "round", e.roundID, "frame", e.state.FrameCount, "gap_top", gapTop)
}

// updateObstacles moves, draws, collides, scores and retires every obstacle
// in spawn order. It returns true on the first collision; obstacles after the
// colliding one are left as they were.
//
// Retired obstacles are dropped by rebuilding the slice in place, so removal
// never skips or repeats a neighbor.
func (e *Engine) updateObstacles() (collided bool) {
	obs := e.cfg.Obstacles
	all := e.state.Obstacles
	kept := all[:0]

	for i := range all {
		o := all[i]
		o.X -= e.cfg.Physics.PipeSpeed
		e.drawObstacle(o)

		if e.collides(o) {
			kept = append(kept, o)
			kept = append(kept, all[i+1:]...)
			e.state.Obstacles = kept
			return true
		}

		if !o.Passed && e.cfg.Player.X > o.X+obs.PipeWidth {
			o.Passed = true
			e.state.Score++
			if e.hooks.OnScore != nil {
				e.hooks.OnScore(e.state.Score)
			}
		}

		if o.X < -obs.PipeWidth {
			e.logger.Debug("obstacle retired", "round", e.roundID, "frame", e.state.FrameCount)
			continue
		}
		kept = append(kept, o)
	}

	e.state.Obstacles = kept
	return false
}

// collides reports whether the player's hitbox overlaps the obstacle's column
// and reaches above the gap top or below the gap bottom. Touching edges do not count.
func (e *Engine) collides(o Obstacle) bool {
	obs := e.cfg.Obstacles
	player := e.playerRect()

	if !player.OverlapsX(o.TopRect(obs.PipeWidth)) {
		return false
	}
	return player.Y < o.GapTop || player.Bottom() > o.GapTop+obs.Gap
}

func (e *Engine) drawObstacle(o Obstacle) {
	obs := e.cfg.Obstacles
	e.surface.DrawImage(e.assets.PipeTop, o.TopRect(obs.PipeWidth))
	e.surface.DrawImage(e.assets.PipeBottom, o.BottomRect(obs.PipeWidth, obs.Gap, e.cfg.Playfield.Height))
}
