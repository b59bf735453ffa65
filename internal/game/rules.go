package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gobbler/internal/entity"
	"github.com/samdwyer/gobbler/internal/telemetry"
	"github.com/samdwyer/gobbler/internal/world"
)

// Scoring values.
const (
	// DotPoints is awarded per collected dot.
	DotPoints = 10
	// PelletPoints is awarded per collected power pellet.
	PelletPoints = 50
	// GhostPoints is the combo unit for eating a vulnerable ghost: the
	// first ghost in a power window scores 200, the second 400, and so on.
	GhostPoints = 200
)

// update advances the simulation by one tick. Outside StatePlaying it is
// a no-op, which is what makes pausing work.
func (g *Game) update(ctx context.Context) {
	if g.state != StatePlaying {
		return
	}
	g.tick++

	g.movePlayer()
	g.collect(ctx)
	if g.state != StatePlaying {
		return // level cleared or game won
	}
	if g.resolveCollisions(ctx) {
		return // life lost this tick
	}
	g.moveGhosts()
	if g.resolveCollisions(ctx) {
		return
	}
	g.tickPowerMode()
}

// movePlayer applies a buffered turn if the turn is open, then moves one
// step in the facing direction. Moves into walls are silently dropped.
func (g *Game) movePlayer() {
	p := g.player

	if p.Desired != entity.DirNone && p.Desired != p.Facing {
		dx, dy := p.Desired.Delta()
		if g.maze.IsPassable(p.X+dx, p.Y+dy) {
			p.Facing = p.Desired
		}
	}

	if p.Facing == entity.DirNone {
		return
	}
	dx, dy := p.Facing.Delta()
	if g.maze.IsPassable(p.X+dx, p.Y+dy) {
		p.X += dx
		p.Y += dy
	}
}

// collect consumes any item on the player's tile and applies its effect.
func (g *Game) collect(ctx context.Context) {
	tile, ate := g.maze.Consume(g.player.X, g.player.Y)
	if !ate {
		return
	}

	switch tile {
	case world.TileDot:
		g.player.Score += DotPoints
		if g.sounds != nil {
			g.sounds.PlayDot()
		}
	case world.TilePellet:
		g.player.Score += PelletPoints
		g.activatePowerMode()
	}

	if g.maze.Remaining() == 0 {
		g.finishLevel(ctx)
	}
}

// activatePowerMode makes every ghost vulnerable for the level's power
// window, resets the eating combo and reverses all ghosts.
func (g *Game) activatePowerMode() {
	g.powerTicks = g.levelDef.PowerTicks
	g.combo = 0
	for _, gh := range g.ghosts {
		gh.Vulnerable = true
		gh.Dir = gh.Dir.Opposite()
	}
	if g.sounds != nil {
		g.sounds.PlayPellet()
	}
}

// moveGhosts advances every ghost. Vulnerable ghosts only move on every
// second tick, giving the player a speed edge during power mode.
func (g *Game) moveGhosts() {
	for _, gh := range g.ghosts {
		if gh.Vulnerable && g.tick%2 == 1 {
			continue
		}
		g.director.Advance(gh, g.player, g.maze)
	}
}

// resolveCollisions handles player/ghost tile overlaps. It returns true
// if a life was lost, ending the tick.
func (g *Game) resolveCollisions(ctx context.Context) bool {
	for _, gh := range g.ghosts {
		if gh.X != g.player.X || gh.Y != g.player.Y {
			continue
		}
		if gh.Vulnerable {
			g.eatGhost(gh)
			continue
		}
		g.loseLife(ctx)
		return true
	}
	return false
}

// eatGhost scores an escalating combo and sends the ghost home.
func (g *Game) eatGhost(gh *entity.Ghost) {
	g.combo++
	g.player.Score += GhostPoints * g.combo
	gh.Respawn()
	if g.sounds != nil {
		g.sounds.PlayGhostEaten()
	}
}

// loseLife takes a life, resets positions and clears power mode. Losing
// the last life ends the run.
func (g *Game) loseLife(ctx context.Context) {
	g.player.Lives--
	if g.sounds != nil {
		g.sounds.PlayDeath()
	}

	if g.player.Lives <= 0 {
		g.state = StateGameOver
		g.endRun(ctx, "game_over")
		return
	}

	g.player.Reset()
	for _, gh := range g.ghosts {
		gh.Reset()
	}
	g.powerTicks = 0
	g.combo = 0
}

// tickPowerMode counts the power window down; at zero every ghost's
// vulnerable flag clears.
func (g *Game) tickPowerMode() {
	if g.powerTicks == 0 {
		return
	}
	g.powerTicks--
	if g.powerTicks == 0 {
		for _, gh := range g.ghosts {
			gh.Vulnerable = false
		}
	}
}

// finishLevel handles a cleared maze: the final level wins the run,
// anything earlier waits for the player to continue.
func (g *Game) finishLevel(ctx context.Context) {
	if g.sounds != nil {
		g.sounds.PlayLevelClear()
	}
	if g.level >= g.levelReg.Count() {
		g.state = StateWon
		g.endRun(ctx, "won")
		return
	}
	g.state = StateLevelComplete
}

// endRun records the run outcome span.
func (g *Game) endRun(ctx context.Context, outcome string) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("score", g.player.Score),
		attribute.Int("level", g.level),
		attribute.Int("lives", g.player.Lives),
		attribute.Int64("ticks", int64(g.tick)),
	)
	span.End()
}
