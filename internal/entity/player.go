package entity

import "github.com/samdwyer/gobbler/internal/world"

// StartingLives is the number of lives a new player gets.
const StartingLives = 3

// Player represents the player's avatar in the maze.
type Player struct {
	X, Y    int       // Current tile position
	Facing  Direction // Direction of travel
	Desired Direction // Buffered turn, applied when the turn opens up

	Lives int
	Score int

	spawn world.Point
}

// NewPlayer creates a player at the given spawn point with full lives.
func NewPlayer(spawn world.Point) *Player {
	return &Player{
		X:     spawn.X,
		Y:     spawn.Y,
		Lives: StartingLives,
		spawn: spawn,
	}
}

// Reset returns the player to its spawn point, standing still.
// Lives and score are untouched.
func (p *Player) Reset() {
	p.X = p.spawn.X
	p.Y = p.spawn.Y
	p.Facing = DirNone
	p.Desired = DirNone
}

// MoveTo places the player on a new spawn point, used when a new level loads.
func (p *Player) MoveTo(spawn world.Point) {
	p.spawn = spawn
	p.Reset()
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
