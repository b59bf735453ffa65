package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gobbler/internal/ai"
	"github.com/samdwyer/gobbler/internal/audio"
	"github.com/samdwyer/gobbler/internal/entity"
	"github.com/samdwyer/gobbler/internal/gamedata"
	"github.com/samdwyer/gobbler/internal/telemetry"
	"github.com/samdwyer/gobbler/internal/ui"
	"github.com/samdwyer/gobbler/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sounds   *audio.Engine

	ghostReg *gamedata.GhostRegistry
	levelReg *gamedata.LevelRegistry

	maze     *world.Maze
	player   *entity.Player
	ghosts   []*entity.Ghost
	director *ai.Director
	levelDef *gamedata.LevelDef

	state      State
	level      int    // 1-based level number
	powerTicks int    // remaining power mode ticks, 0 = inactive
	combo      int    // ghosts eaten in the current power window
	tick       uint64 // simulation tick counter

	cfg     Config
	rng     *rand.Rand
	running bool
}

// New creates a new game instance attached to the terminal.
func New(cfg Config) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	g.sounds = audio.New(cfg.Audio)
	return g, nil
}

// newGame builds the simulation without a terminal or audio attached.
// Tests drive the rules through this.
func newGame(cfg Config) (*Game, error) {
	ghostReg, err := gamedata.LoadGhostRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading ghost definitions: %w", err)
	}
	levelReg, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading level definitions: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		ghostReg: ghostReg,
		levelReg: levelReg,
		state:    StateMenu,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		running:  true,
	}, nil
}

// loadLevel parses a level's maze and places the player and ghosts.
// It keeps the player's lives and score across levels; a nil player
// starts a fresh run.
func (g *Game) loadLevel(ctx context.Context, number int) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "level.start")
	defer span.End()

	def := g.levelReg.Get(number)
	if def == nil {
		return fmt.Errorf("no such level: %d", number)
	}

	maze, err := world.Parse(def.Rows)
	if err != nil {
		return fmt.Errorf("level %q: %w", def.ID, err)
	}

	defs := g.ghostReg.All()
	ghosts := make([]*entity.Ghost, 0, len(defs))
	for i := range defs {
		home := maze.GhostHomes[i%len(maze.GhostHomes)]
		gh, err := entity.NewGhostFromDef(&defs[i], home)
		if err != nil {
			return fmt.Errorf("level %q: %w", def.ID, err)
		}
		ghosts = append(ghosts, gh)
	}

	g.maze = maze
	g.ghosts = ghosts
	g.director = ai.NewDirector(maze, g.rng)
	g.levelDef = def
	g.level = number
	g.powerTicks = 0
	g.combo = 0

	if g.player == nil {
		g.player = entity.NewPlayer(maze.PlayerSpawn)
	} else {
		g.player.MoveTo(maze.PlayerSpawn)
	}

	span.SetAttributes(
		attribute.String("level.id", def.ID),
		attribute.Int("level.number", number),
		attribute.Int("level.dots", maze.Remaining()),
		attribute.Int("level.ghosts", len(ghosts)),
	)
	return nil
}

// startRun begins a fresh run on level 1 with full lives and zero score.
func (g *Game) startRun(ctx context.Context) error {
	g.player = nil
	if err := g.loadLevel(ctx, 1); err != nil {
		return err
	}
	g.state = StatePlaying
	return nil
}

// Run executes the main game loop: a fixed-rate ticker drives simulation
// updates and rendering while terminal events arrive over a channel.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.loadLevel(ctx, 1)
	if err != nil {
		initSpan.End()
		return err
	}
	initSpan.SetAttributes(
		attribute.Int("levels", g.levelReg.Count()),
		attribute.Int("ghosts", len(g.ghosts)),
		attribute.Int("tick_rate", g.cfg.TickRate),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.handleKeyEvent(ctx, ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			g.update(ctx)
			g.render()
		}
	}

	return nil
}

// handleKeyEvent processes keyboard input according to the current state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyUp:
		g.steer(entity.DirUp)
		return
	case tcell.KeyDown:
		g.steer(entity.DirDown)
		return
	case tcell.KeyLeft:
		g.steer(entity.DirLeft)
		return
	case tcell.KeyRight:
		g.steer(entity.DirRight)
		return
	case tcell.KeyEnter:
		g.confirm(ctx)
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		g.running = false
	case 'h':
		g.steer(entity.DirLeft)
	case 'j':
		g.steer(entity.DirDown)
	case 'k':
		g.steer(entity.DirUp)
	case 'l':
		g.steer(entity.DirRight)
	case 'p', 'P':
		g.togglePause()
	case 'r', 'R':
		g.restart(ctx)
	case ' ':
		g.confirm(ctx)
	}
}

// steer buffers a turn request. Applied on the next tick where the turn
// is open.
func (g *Game) steer(dir entity.Direction) {
	if g.state != StatePlaying {
		return
	}
	g.player.Desired = dir
}

// confirm handles the start/continue key: starts a run from the menu and
// advances past a completed level.
func (g *Game) confirm(ctx context.Context) {
	switch g.state {
	case StateMenu:
		_ = g.startRun(ctx) // level 1 already parsed once during init
	case StateLevelComplete:
		if err := g.loadLevel(ctx, g.level+1); err != nil {
			g.running = false
			return
		}
		g.state = StatePlaying
	}
}

// togglePause flips between playing and paused. Rendering and input
// polling continue while paused.
func (g *Game) togglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// restart begins a new run from a terminal state.
func (g *Game) restart(ctx context.Context) {
	if !g.state.Terminal() {
		return
	}
	if err := g.startRun(ctx); err != nil {
		g.running = false
	}
}

// render draws the current frame.
func (g *Game) render() {
	hud := ui.HUD{
		Score:     g.player.Score,
		Lives:     g.player.Lives,
		Level:     g.level,
		LevelName: g.levelDef.Name,
		Banner:    g.banner(),
		Hint:      g.hint(),
	}
	g.renderer.Render(g.maze, g.player, g.ghosts, hud)
}

// banner returns the overlay headline for the current state, or "" while
// playing.
func (g *Game) banner() string {
	switch g.state {
	case StateMenu:
		return "G O B B L E R"
	case StatePaused:
		return "PAUSED"
	case StateLevelComplete:
		return "LEVEL CLEAR"
	case StateGameOver:
		return "GAME OVER"
	case StateWon:
		return "YOU WIN"
	default:
		return ""
	}
}

// hint returns the key hint shown under the banner.
func (g *Game) hint() string {
	switch g.state {
	case StateMenu:
		return "press enter to start"
	case StatePaused:
		return "press p to resume"
	case StateLevelComplete:
		return "press enter to continue"
	case StateGameOver, StateWon:
		return "press r to restart, q to quit"
	default:
		return ""
	}
}

// Close cleans up terminal and audio resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
	if g.sounds != nil {
		g.sounds.Close()
	}
}
