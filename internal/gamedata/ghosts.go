package gamedata

import "github.com/gdamore/tcell/v2"

// GhostDef defines a ghost loaded from JSON. The behavior field names one
// of the four targeting variants: chase, ambush, patrol or random.
type GhostDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "brute")
	Name     string `json:"name"`     // Display name (e.g., "Brute")
	Glyph    string `json:"glyph"`    // Single character for rendering (e.g., "B")
	Color    string `json:"color"`    // Hex color code (e.g., "#FF4040")
	Behavior string `json:"behavior"` // Targeting variant tag
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GhostDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (g *GhostDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// GhostsFile represents the structure of ghosts.json.
type GhostsFile struct {
	Ghosts []GhostDef `json:"ghosts"`
}

// LoadGhosts loads ghost definitions from the embedded ghosts.json file.
func LoadGhosts() ([]GhostDef, error) {
	file, err := Load[GhostsFile]("ghosts.json")
	if err != nil {
		return nil, err
	}
	return file.Ghosts, nil
}

// MustLoadGhosts loads ghost definitions, panicking on error.
func MustLoadGhosts() []GhostDef {
	ghosts, err := LoadGhosts()
	if err != nil {
		panic(err)
	}
	return ghosts
}
