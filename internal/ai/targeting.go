// Package ai implements ghost targeting heuristics and step selection.
//
// Each tick a ghost picks a target tile according to its behavior variant,
// then steps to the open neighbor tile closest to that target. Ghosts never
// reverse direction unless they are in a dead end.
package ai

import (
	"math/rand"

	"github.com/samdwyer/gobbler/internal/entity"
	"github.com/samdwyer/gobbler/internal/world"
)

// AmbushLead is how many tiles ahead of the player an ambush ghost aims.
const AmbushLead = 4

// stepOrder is the fixed tie-break order when two neighbors are equally
// close to the target.
var stepOrder = [4]entity.Direction{
	entity.DirUp,
	entity.DirLeft,
	entity.DirDown,
	entity.DirRight,
}

// Director drives ghost movement decisions for one level.
type Director struct {
	rng       *rand.Rand
	waypoints []world.Point // patrol loop, clockwise maze corners
}

// NewDirector creates a director for the given maze. Patrol ghosts loop
// over the maze's corner waypoints.
func NewDirector(m *world.Maze, rng *rand.Rand) *Director {
	return &Director{
		rng:       rng,
		waypoints: m.Corners(),
	}
}

// Advance moves the ghost one step. Vulnerable ghosts flee to a random
// open neighbor; random-variant ghosts always move that way. Everyone
// else steps toward their variant's target tile.
func (d *Director) Advance(g *entity.Ghost, p *entity.Player, m *world.Maze) {
	if g.Vulnerable || g.Behavior == entity.BehaviorRandom {
		d.randomStep(g, m)
		return
	}
	d.stepToward(g, m, d.Target(g, p))
}

// Target returns the tile the ghost is steering toward this tick.
// Patrol targets consume randomness and advance the ghost's waypoint.
func (d *Director) Target(g *entity.Ghost, p *entity.Player) world.Point {
	switch g.Behavior {
	case entity.BehaviorChase:
		return world.Point{X: p.X, Y: p.Y}
	case entity.BehaviorAmbush:
		dx, dy := p.Facing.Delta()
		return world.Point{X: p.X + dx*AmbushLead, Y: p.Y + dy*AmbushLead}
	case entity.BehaviorPatrol:
		return d.patrolTarget(g)
	default:
		return world.Point{X: g.X, Y: g.Y}
	}
}

// patrolTarget returns the current waypoint with a one-tile random jitter.
// Reaching a waypoint (within one tile) advances the loop.
func (d *Director) patrolTarget(g *entity.Ghost) world.Point {
	wp := d.waypoints[g.Waypoint%len(d.waypoints)]
	if abs(g.X-wp.X)+abs(g.Y-wp.Y) <= 1 {
		g.Waypoint = (g.Waypoint + 1) % len(d.waypoints)
		wp = d.waypoints[g.Waypoint]
	}
	return world.Point{
		X: wp.X + d.rng.Intn(3) - 1,
		Y: wp.Y + d.rng.Intn(3) - 1,
	}
}

// stepToward moves the ghost onto the open neighbor with the smallest
// squared distance to the target. The tile behind the ghost is only
// considered when nothing else is open.
func (d *Director) stepToward(g *entity.Ghost, m *world.Maze, target world.Point) {
	reverse := g.Dir.Opposite()

	var bestDir entity.Direction
	bestDist := -1
	for _, dir := range stepOrder {
		if dir == reverse && g.Dir != entity.DirNone {
			continue
		}
		dx, dy := dir.Delta()
		if !m.IsPassable(g.X+dx, g.Y+dy) {
			continue
		}
		dist := sq(g.X+dx-target.X) + sq(g.Y+dy-target.Y)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestDir = dir
		}
	}

	if bestDist < 0 {
		// Dead end: reversing is the only way out.
		dx, dy := reverse.Delta()
		if reverse == entity.DirNone || !m.IsPassable(g.X+dx, g.Y+dy) {
			return // boxed in, stay put
		}
		bestDir = reverse
	}

	d.move(g, bestDir)
}

// randomStep moves the ghost onto a uniformly random open neighbor,
// excluding the tile behind it unless that is the only way out.
func (d *Director) randomStep(g *entity.Ghost, m *world.Maze) {
	reverse := g.Dir.Opposite()

	open := make([]entity.Direction, 0, 4)
	for _, dir := range stepOrder {
		if dir == reverse && g.Dir != entity.DirNone {
			continue
		}
		dx, dy := dir.Delta()
		if m.IsPassable(g.X+dx, g.Y+dy) {
			open = append(open, dir)
		}
	}

	if len(open) == 0 {
		dx, dy := reverse.Delta()
		if reverse == entity.DirNone || !m.IsPassable(g.X+dx, g.Y+dy) {
			return
		}
		d.move(g, reverse)
		return
	}

	d.move(g, open[d.rng.Intn(len(open))])
}

// move applies one step in the given direction.
func (d *Director) move(g *entity.Ghost, dir entity.Direction) {
	dx, dy := dir.Delta()
	g.X += dx
	g.Y += dy
	g.Dir = dir
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sq(n int) int {
	return n * n
}
