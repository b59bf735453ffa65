package gamedata

// LevelDef defines a level loaded from JSON.
//
// Rows use the maze character set: '#' wall, '.' dot, 'o' power pellet,
// ' ' bare floor, 'P' player spawn, 'G' ghost home slot.
type LevelDef struct {
	ID         string   `json:"id"`         // Unique identifier (e.g., "warren")
	Name       string   `json:"name"`       // Display name
	PowerTicks int      `json:"powerTicks"` // Power mode duration in ticks
	Rows       []string `json:"rows"`       // Maze layout, one string per row
}

// LevelsFile represents the structure of levels.json. Levels play in
// file order.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// MustLoadLevels loads level definitions, panicking on error.
func MustLoadLevels() []LevelDef {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
