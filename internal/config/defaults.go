package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultYAML []byte

// Default returns the stock tuning, identical to the embedded YAML.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     1100,
			FlapImpulse: -350,
			ScrollSpeed: 180,
			MaxDeltaMS:  35,
		},
		Obstacles: Obstacles{
			GapHeight:       140,
			PipeWidth:       60,
			SpawnIntervalMS: 1400,
			TopMargin:       40,
			GroundHeight:    58,
			DespawnMargin:   60,
		},
		Body: Body{
			X:      120,
			Radius: 18,
		},
	}
}
