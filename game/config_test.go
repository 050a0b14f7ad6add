package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig failed validation: %v", err)
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"gravity": 0.5, "maxEnemies": 2}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Gravity != 0.5 {
		t.Errorf("Gravity = %g, want overridden 0.5", config.Gravity)
	}
	if config.MaxEnemies != 2 {
		t.Errorf("MaxEnemies = %d, want overridden 2", config.MaxEnemies)
	}
	// Untouched keys keep their defaults.
	def := DefaultConfig()
	if config.StarMass != def.StarMass || config.BulletSpeed != def.BulletSpeed {
		t.Error("keys absent from the file lost their defaults")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"gravity": `)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, `{"gravity": -1}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a validation error for negative gravity")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative fps", func(c *Config) { c.TargetFPS = -1 }},
		{"zero time step", func(c *Config) { c.TimeStep = 0 }},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }},
		{"zero trajectory length", func(c *Config) { c.TrajectoryLength = 0 }},
		{"inverted zoom range", func(c *Config) { c.MaxZoom = c.MinZoom / 2 }},
		{"spawn rate above one", func(c *Config) { c.EnemySpawnRate = 1.5 }},
		{"inverted spawn annulus", func(c *Config) { c.SpawnAnnulusOuter = c.SpawnAnnulusInner - 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
