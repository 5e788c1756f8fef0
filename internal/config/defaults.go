package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default game configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Size: 8,
		},
		Tray: TrayConfig{
			Slots:            3,
			MinCells:         1,
			MaxCells:         9,
			ComplexityWeight: 1.0,
		},
		Motion: MotionConfig{
			HighRefresh: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
