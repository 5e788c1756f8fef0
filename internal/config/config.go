// Package config provides YAML-based game configuration loading and
// difficulty management for the blocks platform.
package config

// BlocksConfig contains all configuration for the block puzzle game.
type BlocksConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Tray   TrayConfig   `yaml:"tray"`
	Motion MotionConfig `yaml:"motion"`
}

// BoardConfig defines the grid parameters.
type BoardConfig struct {
	Size int `yaml:"size"` // Grid dimension N for the N x N board
}

// TrayConfig defines the dispenser parameters. MinCells/MaxCells bound the
// admissible archetype size; ComplexityWeight biases the draw toward
// larger (>1.0) or smaller (<1.0) shapes.
type TrayConfig struct {
	Slots            int     `yaml:"slots"`
	MinCells         int     `yaml:"min_cells"`
	MaxCells         int     `yaml:"max_cells"`
	ComplexityWeight float64 `yaml:"complexity_weight"`
}

// MotionConfig carries display-capability hints for drag animations.
type MotionConfig struct {
	HighRefresh bool `yaml:"high_refresh"` // Faster cancel easing when true
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the tray rules based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tray.MinCells = 1
		cfg.Tray.MaxCells = 5
		cfg.Tray.ComplexityWeight = 0.8
	case DifficultyNormal:
		cfg.Tray.MinCells = 1
		cfg.Tray.MaxCells = 9
		cfg.Tray.ComplexityWeight = 1.0
	case DifficultyHard:
		cfg.Tray.MinCells = 2
		cfg.Tray.MaxCells = 9
		cfg.Tray.ComplexityWeight = 1.25
	}
}
