// Package config provides YAML-based tuning configuration for the game.
// Values map one-to-one onto engine.Tuning; the cosmetic orientation
// constants are compiled into the engine and deliberately not exposed here.
package config

import "github.com/glidekit/flaptui/internal/engine"

// Config is the on-disk tuning file.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Body      Body      `yaml:"body"`
}

// Physics defines motion parameters. Durations are in milliseconds in the
// file for readability and converted to seconds for the engine.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`       // px/s²
	FlapImpulse float64 `yaml:"flap_impulse"`  // px/s, negative = up
	ScrollSpeed float64 `yaml:"scroll_speed"`  // px/s
	MaxDeltaMS  float64 `yaml:"max_delta_ms"`  // per-tick clamp
}

// Obstacles defines pipe geometry and spawn policy.
type Obstacles struct {
	GapHeight       float64 `yaml:"gap_height"`
	PipeWidth       float64 `yaml:"pipe_width"`
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
	TopMargin       float64 `yaml:"top_margin"`
	GroundHeight    float64 `yaml:"ground_height"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// Body defines the player body's fixed position and size.
type Body struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// Tuning converts the file values to engine units.
func (c Config) Tuning() engine.Tuning {
	return engine.Tuning{
		Gravity:       c.Physics.Gravity,
		FlapImpulse:   c.Physics.FlapImpulse,
		ScrollSpeed:   c.Physics.ScrollSpeed,
		MaxDelta:      c.Physics.MaxDeltaMS / 1000,
		GapHeight:     c.Obstacles.GapHeight,
		PipeWidth:     c.Obstacles.PipeWidth,
		SpawnInterval: c.Obstacles.SpawnIntervalMS / 1000,
		TopMargin:     c.Obstacles.TopMargin,
		GroundHeight:  c.Obstacles.GroundHeight,
		DespawnMargin: c.Obstacles.DespawnMargin,
		BodyX:         c.Body.X,
		BodyRadius:    c.Body.Radius,
	}
}
