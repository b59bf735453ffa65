// Package game provides the main game loop, rules and state management.
package game

// State represents the current game state.
type State int

const (
	// StateMenu is the title screen shown before a run starts.
	StateMenu State = iota
	// StatePlaying is the active simulation.
	StatePlaying
	// StatePaused skips updates while still rendering and polling input.
	StatePaused
	// StateLevelComplete waits for the player to continue to the next level.
	StateLevelComplete
	// StateGameOver is reached when the last life is lost.
	StateGameOver
	// StateWon is reached by clearing the final level.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal returns true for states that end a run.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWon
}
