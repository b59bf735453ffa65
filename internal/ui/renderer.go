package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gobbler/internal/entity"
	"github.com/samdwyer/gobbler/internal/world"
)

// HUD carries the per-frame status line and overlay text.
type HUD struct {
	Score     int
	Lives     int
	Level     int
	LevelName string
	Banner    string // state headline, "" while playing
	Hint      string // key hint shown under the banner
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: maze, entities, status line and any overlay.
func (r *Renderer) Render(maze *world.Maze, player *entity.Player, ghosts []*entity.Ghost, hud HUD) {
	r.screen.Clear()

	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			tile := maze.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	for _, gh := range ghosts {
		style := tcell.StyleDefault.Foreground(gh.Color()).Bold(true)
		r.screen.SetContent(gh.X, gh.Y, gh.Symbol, style)
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(player.X, player.Y, '@', playerStyle)

	status := fmt.Sprintf("Score: %d   Lives: %d   Level %d: %s",
		hud.Score, hud.Lives, hud.Level, hud.LevelName)
	r.drawText(0, maze.Height, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if hud.Banner != "" {
		r.drawCentered(maze.Width, maze.Height/2, hud.Banner,
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		r.drawCentered(maze.Width, maze.Height/2+1, hud.Hint,
			tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TileDot:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TilePellet:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// drawText draws a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// drawCentered draws a string horizontally centered within the given width.
func (r *Renderer) drawCentered(width, y int, text string, style tcell.Style) {
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
