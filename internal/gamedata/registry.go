package gamedata

import "errors"

// GhostRegistry holds loaded ghost definitions.
type GhostRegistry struct {
	ghosts []GhostDef
}

// NewGhostRegistry creates a registry from loaded ghost definitions.
func NewGhostRegistry(ghosts []GhostDef) *GhostRegistry {
	return &GhostRegistry{ghosts: ghosts}
}

// LoadGhostRegistry loads and creates a registry from the embedded
// ghosts.json.
func LoadGhostRegistry() (*GhostRegistry, error) {
	ghosts, err := LoadGhosts()
	if err != nil {
		return nil, err
	}
	if len(ghosts) == 0 {
		return nil, errors.New("no ghosts loaded from ghosts.json")
	}
	return NewGhostRegistry(ghosts), nil
}

// MustLoadGhostRegistry loads a registry, panicking on error.
func MustLoadGhostRegistry() *GhostRegistry {
	registry, err := LoadGhostRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the ghost definition with the given ID, or nil if not found.
func (r *GhostRegistry) GetByID(id string) *GhostDef {
	for i := range r.ghosts {
		if r.ghosts[i].ID == id {
			return &r.ghosts[i]
		}
	}
	return nil
}

// All returns all ghost definitions.
func (r *GhostRegistry) All() []GhostDef {
	return r.ghosts
}

// Count returns the number of ghost definitions in the registry.
func (r *GhostRegistry) Count() int {
	return len(r.ghosts)
}

// =============================================================================
// LevelRegistry
// =============================================================================

// LevelRegistry holds loaded level definitions in play order.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded
// levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the level definition for a 1-based level number, or nil if
// out of range.
func (r *LevelRegistry) Get(number int) *LevelDef {
	if number < 1 || number > len(r.levels) {
		return nil
	}
	return &r.levels[number-1]
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// All returns all level definitions in play order.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
