package gamedata

import (
	"testing"

	"github.com/samdwyer/gobbler/internal/world"
)

func TestLoadGhosts(t *testing.T) {
	ghosts, err := LoadGhosts()
	if err != nil {
		t.Fatalf("Failed to load ghosts: %v", err)
	}

	if len(ghosts) != 4 {
		t.Errorf("Expected 4 ghosts, got %d", len(ghosts))
	}

	// One ghost per targeting variant
	behaviors := map[string]bool{"chase": false, "ambush": false, "patrol": false, "random": false}
	for _, g := range ghosts {
		if _, ok := behaviors[g.Behavior]; !ok {
			t.Errorf("Ghost %q has unknown behavior %q", g.ID, g.Behavior)
			continue
		}
		behaviors[g.Behavior] = true
	}
	for b, found := range behaviors {
		if !found {
			t.Errorf("No ghost with behavior %q", b)
		}
	}
}

func TestGhostRegistry(t *testing.T) {
	registry, err := LoadGhostRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 ghost types, got %d", registry.Count())
	}

	brute := registry.GetByID("brute")
	if brute == nil {
		t.Fatal("Brute not found by ID")
	}
	if brute.Name != "Brute" {
		t.Errorf("Expected name 'Brute', got %q", brute.Name)
	}
	if brute.GlyphRune() != 'B' {
		t.Errorf("Expected glyph 'B', got %c", brute.GlyphRune())
	}

	if registry.GetByID("nonexistent") != nil {
		t.Error("GetByID for unknown ghost should return nil")
	}
}

func TestLevelRegistry(t *testing.T) {
	registry, err := LoadLevelRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 levels, got %d", registry.Count())
	}

	first := registry.Get(1)
	if first == nil {
		t.Fatal("Level 1 not found")
	}
	if first.ID != "warren" {
		t.Errorf("Level 1 ID = %q, want %q", first.ID, "warren")
	}
	if first.PowerTicks <= 0 {
		t.Errorf("Level 1 PowerTicks = %d, want > 0", first.PowerTicks)
	}

	if registry.Get(0) != nil || registry.Get(4) != nil {
		t.Error("Get out of range should return nil")
	}
	if registry.GetByID("lattice") == nil {
		t.Error("GetByID(lattice) should find level 3")
	}
}

// TestLevelsParse verifies every embedded level is a valid maze with
// enough ghost home slots for the full ghost roster.
func TestLevelsParse(t *testing.T) {
	levels := MustLoadLevels()
	ghosts := MustLoadGhosts()

	for _, lv := range levels {
		m, err := world.Parse(lv.Rows)
		if err != nil {
			t.Errorf("Level %q does not parse: %v", lv.ID, err)
			continue
		}
		if len(m.GhostHomes) < len(ghosts) {
			t.Errorf("Level %q has %d ghost homes, want >= %d", lv.ID, len(m.GhostHomes), len(ghosts))
		}
		if m.Remaining() == 0 {
			t.Errorf("Level %q has nothing to collect", lv.ID)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestGhostDefMethods(t *testing.T) {
	def := GhostDef{
		ID:       "test",
		Name:     "Test Ghost",
		Glyph:    "T",
		Color:    "#FF0000",
		Behavior: "chase",
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}

	empty := GhostDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Empty glyph should render '?', got %c", empty.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}
}
