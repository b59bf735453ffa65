package game

import (
	"os"
	"strconv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible ghost
	// behavior. A seed of 0 means a time-based seed will be used.
	Seed int64

	// TickRate is the number of simulation ticks per second.
	TickRate int

	// Audio enables the synthesized sound effects.
	Audio bool
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		TickRate: 10,
		Audio:    true,
	}
}

// ConfigFromEnv reads configuration from GOBBLER_* environment variables,
// falling back to defaults for anything unset or unparsable:
//   - GOBBLER_SEED: int64 RNG seed
//   - GOBBLER_TICK_RATE: ticks per second (must be positive)
//   - GOBBLER_AUDIO: bool toggle for sound effects
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GOBBLER_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("GOBBLER_TICK_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TickRate = n
		}
	}
	if v := os.Getenv("GOBBLER_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio = b
		}
	}

	return cfg
}
