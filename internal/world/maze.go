package world

import "fmt"

// Characters accepted in level definition rows.
const (
	charWall   = '#'
	charDot    = '.'
	charPellet = 'o'
	charFloor  = ' '
	charPlayer = 'P' // player spawn, parsed as floor
	charGhost  = 'G' // ghost home slot, parsed as floor
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Maze is one level's tile map together with the spawn points parsed
// out of its definition rows.
type Maze struct {
	Width  int
	Height int
	Tiles  [][]Tile

	PlayerSpawn Point
	GhostHomes  []Point // in reading order of the G markers

	remaining int // uneaten dots and pellets
}

// Parse builds a maze from level definition rows.
// Rows must be non-empty, rectangular, contain exactly one player spawn,
// and at least one ghost home.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze has no rows")
	}

	width := len(rows[0])
	m := &Maze{
		Width:  width,
		Height: len(rows),
		Tiles:  make([][]Tile, len(rows)),
	}
	playerSeen := false

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("maze row %d has width %d, want %d", y, len(row), width)
		}
		m.Tiles[y] = make([]Tile, width)
		for x, ch := range row {
			switch ch {
			case charWall:
				m.Tiles[y][x] = TileWall
			case charDot:
				m.Tiles[y][x] = TileDot
				m.remaining++
			case charPellet:
				m.Tiles[y][x] = TilePellet
				m.remaining++
			case charFloor:
				m.Tiles[y][x] = TileFloor
			case charPlayer:
				if playerSeen {
					return nil, fmt.Errorf("maze has more than one player spawn")
				}
				playerSeen = true
				m.PlayerSpawn = Point{X: x, Y: y}
				m.Tiles[y][x] = TileFloor
			case charGhost:
				m.GhostHomes = append(m.GhostHomes, Point{X: x, Y: y})
				m.Tiles[y][x] = TileFloor
			default:
				return nil, fmt.Errorf("maze row %d has unknown character %q", y, ch)
			}
		}
	}

	if !playerSeen {
		return nil, fmt.Errorf("maze has no player spawn")
	}
	if len(m.GhostHomes) == 0 {
		return nil, fmt.Errorf("maze has no ghost homes")
	}
	return m, nil
}

// TileAt returns the tile at the given position. Out-of-bounds positions
// read as walls.
func (m *Maze) TileAt(x, y int) Tile {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsPassable returns true if the given position can be walked on.
func (m *Maze) IsPassable(x, y int) bool {
	return m.TileAt(x, y).IsPassable()
}

// Consume removes the collectible at the given position, if any.
// It returns the tile kind that was consumed and whether anything was.
func (m *Maze) Consume(x, y int) (Tile, bool) {
	t := m.TileAt(x, y)
	if !t.HasItem() {
		return t, false
	}
	m.Tiles[y][x] = TileEmpty
	m.remaining--
	return t, true
}

// Remaining returns the number of uneaten dots and pellets.
func (m *Maze) Remaining() int {
	return m.remaining
}

// OpenNeighbors returns the passable 4-neighborhood of a position.
func (m *Maze) OpenNeighbors(x, y int) []Point {
	candidates := [4]Point{
		{X: x, Y: y - 1},
		{X: x - 1, Y: y},
		{X: x, Y: y + 1},
		{X: x + 1, Y: y},
	}
	open := make([]Point, 0, 4)
	for _, p := range candidates {
		if m.IsPassable(p.X, p.Y) {
			open = append(open, p)
		}
	}
	return open
}

// NearestOpen returns the passable tile closest to the given position,
// searching outward in rings of growing radius. The position itself is
// returned when already passable.
func (m *Maze) NearestOpen(x, y int) Point {
	if m.IsPassable(x, y) {
		return Point{X: x, Y: y}
	}
	maxR := m.Width
	if m.Height > maxR {
		maxR = m.Height
	}
	for r := 1; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				nx, ny := x+dx, y+dy
				if m.IsPassable(nx, ny) {
					return Point{X: nx, Y: ny}
				}
			}
		}
	}
	return Point{X: x, Y: y}
}

// Corners returns the passable tiles nearest the four maze corners,
// clockwise from top-left. Used as patrol waypoints.
func (m *Maze) Corners() []Point {
	return []Point{
		m.NearestOpen(1, 1),
		m.NearestOpen(m.Width-2, 1),
		m.NearestOpen(m.Width-2, m.Height-2),
		m.NearestOpen(1, m.Height-2),
	}
}
