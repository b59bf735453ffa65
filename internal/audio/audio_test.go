package audio

import "testing"

func TestDisabledEngineIsSilent(t *testing.T) {
	e := New(false)

	// Every call must be a safe no-op without an initialized speaker.
	e.PlayDot()
	e.PlayPellet()
	e.PlayGhostEaten()
	e.PlayDeath()
	e.PlayLevelClear()
	e.Close()
}
