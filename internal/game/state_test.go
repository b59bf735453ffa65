package game

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateMenu, "menu"},
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
		{StateLevelComplete, "level_complete"},
		{StateGameOver, "game_over"},
		{StateWon, "won"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	terminal := map[State]bool{
		StateMenu:          false,
		StatePlaying:       false,
		StatePaused:        false,
		StateLevelComplete: false,
		StateGameOver:      true,
		StateWon:           true,
	}

	for state, want := range terminal {
		if got := state.Terminal(); got != want {
			t.Errorf("%v.Terminal() = %v, want %v", state, got, want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOBBLER_SEED", "42")
	t.Setenv("GOBBLER_TICK_RATE", "30")
	t.Setenv("GOBBLER_AUDIO", "false")

	cfg := ConfigFromEnv()

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.Audio {
		t.Error("Audio should be disabled")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("GOBBLER_SEED", "")
	t.Setenv("GOBBLER_TICK_RATE", "not-a-number")
	t.Setenv("GOBBLER_AUDIO", "")

	cfg := ConfigFromEnv()
	def := DefaultConfig()

	if cfg.Seed != def.Seed {
		t.Errorf("Seed = %d, want default %d", cfg.Seed, def.Seed)
	}
	if cfg.TickRate != def.TickRate {
		t.Errorf("TickRate = %d, want default %d", cfg.TickRate, def.TickRate)
	}
	if cfg.Audio != def.Audio {
		t.Errorf("Audio = %v, want default %v", cfg.Audio, def.Audio)
	}
}

func TestConfigFromEnvRejectsZeroTickRate(t *testing.T) {
	t.Setenv("GOBBLER_TICK_RATE", "0")

	cfg := ConfigFromEnv()
	if cfg.TickRate != DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want default for non-positive input", cfg.TickRate)
	}
}
