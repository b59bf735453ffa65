package entity

import (
	"testing"

	"github.com/samdwyer/gobbler/internal/gamedata"
	"github.com/samdwyer/gobbler/internal/world"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{DirNone, DirNone},
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestParseBehavior(t *testing.T) {
	tests := []struct {
		input string
		want  Behavior
		valid bool
	}{
		{"chase", BehaviorChase, true},
		{"ambush", BehaviorAmbush, true},
		{"patrol", BehaviorPatrol, true},
		{"random", BehaviorRandom, true},
		{"teleport", BehaviorChase, false},
		{"", BehaviorChase, false},
	}

	for _, tt := range tests {
		got, err := ParseBehavior(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseBehavior(%q) failed: %v", tt.input, err)
			} else if got != tt.want {
				t.Errorf("ParseBehavior(%q) = %v, want %v", tt.input, got, tt.want)
			}
		} else if err == nil {
			t.Errorf("ParseBehavior(%q) should fail", tt.input)
		}
	}
}

func TestBehaviorString(t *testing.T) {
	// Behavior strings must round-trip through ParseBehavior; the JSON
	// definitions use them.
	for _, b := range []Behavior{BehaviorChase, BehaviorAmbush, BehaviorPatrol, BehaviorRandom} {
		parsed, err := ParseBehavior(b.String())
		if err != nil {
			t.Errorf("ParseBehavior(%q) failed: %v", b.String(), err)
		} else if parsed != b {
			t.Errorf("Behavior %v does not round-trip (got %v)", b, parsed)
		}
	}
	if Behavior(99).String() != "unknown" {
		t.Error("out-of-range behavior should stringify as unknown")
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(world.Point{X: 3, Y: 4})

	if p.Lives != StartingLives {
		t.Errorf("new player lives = %d, want %d", p.Lives, StartingLives)
	}

	p.X, p.Y = 7, 8
	p.Facing = DirLeft
	p.Desired = DirUp
	p.Score = 120
	p.Lives = 2

	p.Reset()

	if p.X != 3 || p.Y != 4 {
		t.Errorf("reset position = (%d,%d), want (3,4)", p.X, p.Y)
	}
	if p.Facing != DirNone || p.Desired != DirNone {
		t.Error("reset should clear facing and desired directions")
	}
	if p.Score != 120 || p.Lives != 2 {
		t.Error("reset should not touch score or lives")
	}
}

func TestPlayerMoveTo(t *testing.T) {
	p := NewPlayer(world.Point{X: 1, Y: 1})
	p.MoveTo(world.Point{X: 5, Y: 6})

	if p.X != 5 || p.Y != 6 {
		t.Errorf("MoveTo position = (%d,%d), want (5,6)", p.X, p.Y)
	}

	// Reset now returns to the new spawn
	p.X, p.Y = 0, 0
	p.Reset()
	if p.X != 5 || p.Y != 6 {
		t.Errorf("Reset after MoveTo = (%d,%d), want (5,6)", p.X, p.Y)
	}
}

func TestNewGhostFromDef(t *testing.T) {
	def := &gamedata.GhostDef{
		ID:       "brute",
		Name:     "Brute",
		Glyph:    "B",
		Color:    "#FF4040",
		Behavior: "chase",
	}

	g, err := NewGhostFromDef(def, world.Point{X: 9, Y: 5})
	if err != nil {
		t.Fatalf("NewGhostFromDef failed: %v", err)
	}

	if g.Behavior != BehaviorChase {
		t.Errorf("Behavior = %v, want BehaviorChase", g.Behavior)
	}
	if g.X != 9 || g.Y != 5 {
		t.Errorf("position = (%d,%d), want home (9,5)", g.X, g.Y)
	}
	if g.Symbol != 'B' {
		t.Errorf("Symbol = %c, want B", g.Symbol)
	}

	bad := &gamedata.GhostDef{ID: "broken", Behavior: "teleport"}
	if _, err := NewGhostFromDef(bad, world.Point{}); err == nil {
		t.Error("NewGhostFromDef with unknown behavior should fail")
	}
}

func TestGhostRespawn(t *testing.T) {
	def := &gamedata.GhostDef{ID: "drift", Name: "Drift", Glyph: "D", Behavior: "patrol"}
	g, err := NewGhostFromDef(def, world.Point{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("NewGhostFromDef failed: %v", err)
	}

	g.X, g.Y = 8, 8
	g.Dir = DirLeft
	g.Vulnerable = true
	g.Waypoint = 2

	g.Respawn()

	if g.X != 2 || g.Y != 2 {
		t.Errorf("respawn position = (%d,%d), want home (2,2)", g.X, g.Y)
	}
	if g.Vulnerable {
		t.Error("respawn should clear the vulnerable flag")
	}
	if g.Waypoint != 2 {
		t.Error("respawn should keep the patrol waypoint")
	}

	g.Vulnerable = true
	g.Reset()
	if g.Vulnerable || g.Waypoint != 0 {
		t.Error("reset should clear vulnerable flag and patrol waypoint")
	}
}

func TestGhostColorVulnerable(t *testing.T) {
	def := &gamedata.GhostDef{ID: "brute", Glyph: "B", Color: "#FF4040", Behavior: "chase"}
	g, err := NewGhostFromDef(def, world.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("NewGhostFromDef failed: %v", err)
	}

	normal := g.Color()
	g.Vulnerable = true
	if g.Color() == normal {
		t.Error("vulnerable ghost should render a different color")
	}
}
