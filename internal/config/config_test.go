package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded default %+v diverged from Default() %+v", fromYAML, Default())
	}
}

func TestTuningConversion(t *testing.T) {
	tun := Default().Tuning()

	if tun.SpawnInterval != 1.4 {
		t.Errorf("spawn_interval_ms 1400 should convert to 1.4s, got %f", tun.SpawnInterval)
	}
	if tun.MaxDelta != 0.035 {
		t.Errorf("max_delta_ms 35 should convert to 0.035s, got %f", tun.MaxDelta)
	}
	if tun.Gravity != 1100 || tun.FlapImpulse != -350 || tun.BodyX != 120 {
		t.Errorf("unexpected tuning: %+v", tun)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := []byte("physics:\n  gravity: 900\n  flap_impulse: -300\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("expected gravity 900 from custom file, got %f", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Run from an empty directory with no user config reachable.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Errorf("fallback should yield the embedded default, got %+v", cfg)
	}
}
