package config

import (
	_ "embed"
)

//go:embed defaults/phoenix.yaml
var defaultPhoenixYAML []byte

// Default returns the built-in configuration, mirroring defaults/phoenix.yaml.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  480,
			Height: 640,
		},
		Physics: Physics{
			Gravity:        0.5,
			FlapImpulse:    -10,
			PipeSpeed:      2,
			RotationFactor: 0.02,
		},
		Obstacles: Obstacles{
			PipeWidth:     60,
			Gap:           150,
			SpawnInterval: 100,
			Margin:        50,
		},
		Player: Player{
			X:      50,
			Width:  40,
			Height: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPhoenixYAML
}
