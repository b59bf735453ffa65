package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gobbler/internal/gamedata"
	"github.com/samdwyer/gobbler/internal/world"
)

// Behavior is the fixed targeting variant assigned to a ghost at creation.
type Behavior int

const (
	// BehaviorChase targets the player's current tile.
	BehaviorChase Behavior = iota
	// BehaviorAmbush targets a tile ahead of the player's facing direction.
	BehaviorAmbush
	// BehaviorPatrol follows a preset waypoint loop with random jitter.
	BehaviorPatrol
	// BehaviorRandom picks a uniformly random open neighbor each tick.
	BehaviorRandom
)

// String returns the behavior name as used in ghost definitions.
func (b Behavior) String() string {
	switch b {
	case BehaviorChase:
		return "chase"
	case BehaviorAmbush:
		return "ambush"
	case BehaviorPatrol:
		return "patrol"
	case BehaviorRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseBehavior converts a ghost definition behavior string to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "chase":
		return BehaviorChase, nil
	case "ambush":
		return BehaviorAmbush, nil
	case "patrol":
		return BehaviorPatrol, nil
	case "random":
		return BehaviorRandom, nil
	default:
		return BehaviorChase, fmt.Errorf("unknown ghost behavior %q", s)
	}
}

// Ghost represents a pursuing adversary in the maze.
type Ghost struct {
	Def      *gamedata.GhostDef // Data-driven definition (glyph, color, name)
	Name     string
	Symbol   rune
	Behavior Behavior

	X, Y int
	Dir  Direction

	Vulnerable bool        // True while power mode lasts and this ghost is uneaten
	Home       world.Point // Respawn tile

	// Waypoint is the index into the patrol loop for patrol ghosts.
	Waypoint int
}

// NewGhostFromDef creates a ghost from a data-driven definition, homed at
// the given tile.
func NewGhostFromDef(def *gamedata.GhostDef, home world.Point) (*Ghost, error) {
	behavior, err := ParseBehavior(def.Behavior)
	if err != nil {
		return nil, fmt.Errorf("ghost %q: %w", def.ID, err)
	}
	return &Ghost{
		Def:      def,
		Name:     def.Name,
		Symbol:   def.GlyphRune(),
		Behavior: behavior,
		X:        home.X,
		Y:        home.Y,
		Home:     home,
	}, nil
}

// Reset returns the ghost to its home tile and clears its transient state.
// Used on level load and after a life is lost.
func (g *Ghost) Reset() {
	g.X = g.Home.X
	g.Y = g.Home.Y
	g.Dir = DirNone
	g.Vulnerable = false
	g.Waypoint = 0
}

// Respawn sends an eaten ghost back home. Unlike Reset, the patrol
// waypoint survives so a patrol ghost resumes its loop.
func (g *Ghost) Respawn() {
	g.X = g.Home.X
	g.Y = g.Home.Y
	g.Dir = DirNone
	g.Vulnerable = false
}

// Position returns the ghost's current x, y coordinates.
func (g *Ghost) Position() (int, int) {
	return g.X, g.Y
}

// Color returns the tcell color for this ghost. Vulnerable ghosts all
// render the same blue regardless of their definition.
func (g *Ghost) Color() tcell.Color {
	if g.Vulnerable {
		return tcell.ColorBlue
	}
	if g.Def != nil {
		return g.Def.TCellColor()
	}
	return tcell.ColorWhite
}

// ID returns the ghost's definition identifier.
func (g *Ghost) ID() string {
	if g.Def != nil {
		return g.Def.ID
	}
	return g.Name
}
