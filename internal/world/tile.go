// Package world provides maze parsing and tile map management.
package world

// Tile represents a single maze tile.
type Tile int

const (
	// TileWall is an impassable wall tile.
	TileWall Tile = iota
	// TileFloor is a passable tile that never held an item.
	TileFloor
	// TileDot is a passable tile holding a collectible dot.
	TileDot
	// TilePellet is a passable tile holding a power pellet.
	TilePellet
	// TileEmpty is a passable tile whose item has been consumed.
	TileEmpty
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// HasItem returns true if the tile holds a collectible.
func (t Tile) HasItem() bool {
	return t == TileDot || t == TilePellet
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileDot:
		return '.'
	case TilePellet:
		return 'o'
	default:
		return ' '
	}
}
