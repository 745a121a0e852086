package breakout

import "github.com/vovakirdan/bricks/internal/audio"

// Round transitions. The game is always playing; a win or a loss is a
// transient step that resets the grid and carries on.

// handleEvents feeds one tick's events to the round state machine.
func (g *Game) handleEvents(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventWallBounce:
			g.cues.Play(audio.CueBounce)
		case EventPaddleHit:
			g.cues.Play(audio.CuePaddleHit)
		case EventBrickDestroyed:
			g.cues.Play(audio.CueBrick)
			g.brickDestroyed()
		case EventBallLost:
			g.handleLoss()
		}
	}
}

// brickDestroyed scores a brick and starts the win sequence when every brick
// has gone once since the last reset.
func (g *Game) brickDestroyed() {
	g.message = ""
	g.score++

	total := g.grid.Len()
	if total > 0 && g.score%total == 0 {
		g.handleWin()
	}
}

// handleWin shows the win message and schedules the reset. The simulation
// keeps running until the deferred reset fires.
func (g *Game) handleWin() {
	g.wins++
	g.message = g.cfg.Round.WinMessage
	snap := g.Snapshot()
	g.logger.Info("round won", "score", g.score, "tick", g.tick, "reset_in_ticks", g.winDelayTicks, "hash", snap.Hash())
	g.sched.After(g.tick, g.winDelayTicks, g.finishWin)
}

// finishWin is the deferred half of a win.
func (g *Game) finishWin() {
	g.cues.Play(audio.CueWin)
	g.resetGrid()
	g.ball.Center(g.field)
	g.score = 0
	g.logger.Debug("round reset after win", "tick", g.tick)
}

// handleLoss shows the loss message and resets the grid. The score and the
// ball's trajectory are kept.
func (g *Game) handleLoss() {
	g.losses++
	g.message = g.cfg.Round.LoseMessage
	snap := g.Snapshot()
	g.logger.Info("ball lost", "score", g.score, "tick", g.tick, "hash", snap.Hash())
	g.resetGrid()
}

// resetGrid makes every brick visible again.
func (g *Game) resetGrid() {
	g.grid.ShowAll()
	g.cues.Play(audio.CueReset)
}

// RoundStats reports how many wins and losses happened this session.
func (g *Game) RoundStats() (wins, losses int) {
	return g.wins, g.losses
}

// PendingActions returns the number of deferred round actions not yet run.
func (g *Game) PendingActions() int {
	return g.sched.Pending()
}
