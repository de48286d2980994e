package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Settings = Settings{}
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	content := "speed:\n  base_ms: 180\nsettings:\n  theme: neon\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.BaseMS != 180 {
		t.Errorf("Speed.BaseMS = %d, expected 180", cfg.Speed.BaseMS)
	}
	if cfg.Speed.MinMS != 50 {
		t.Errorf("Speed.MinMS = %d, expected default 50", cfg.Speed.MinMS)
	}
	if cfg.Settings.Theme != "neon" {
		t.Errorf("Settings.Theme = %q, expected neon", cfg.Settings.Theme)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestNormalizeSubstitutesDefaults(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Settings.Difficulty = "nightmare"
	cfg.Settings.Theme = "volcano-world"
	cfg.Board.CellSize = 0
	cfg.Villagers.WanderChance = 3

	warnings := Normalize(&cfg)

	if len(warnings) != 4 {
		t.Errorf("Normalize() returned %d warnings, expected 4: %v", len(warnings), warnings)
	}
	if cfg.Settings.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty = %q, expected medium", cfg.Settings.Difficulty)
	}
	if cfg.Settings.Theme != "forest" {
		t.Errorf("Theme = %q, expected forest", cfg.Settings.Theme)
	}
	if cfg.Board.CellSize != 20 {
		t.Errorf("CellSize = %d, expected 20", cfg.Board.CellSize)
	}
	if cfg.Villagers.WanderChance != 0.1 {
		t.Errorf("WanderChance = %g, expected 0.1", cfg.Villagers.WanderChance)
	}
}

func TestNormalizeValidConfigIsQuiet(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if warnings := Normalize(&cfg); len(warnings) != 0 {
		t.Errorf("Normalize() on defaults returned warnings: %v", warnings)
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("speed:\n  base_ms: 170\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := Settings{Difficulty: DifficultyHard, Theme: "space", SoundEnabled: false, ParticleEffects: true}
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Settings != s {
		t.Errorf("Settings = %+v, expected %+v", cfg.Settings, s)
	}
	if cfg.Speed.BaseMS != 170 {
		t.Errorf("existing section lost: Speed.BaseMS = %d, expected 170", cfg.Speed.BaseMS)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"medium", DifficultyMedium, true},
		{"hard", DifficultyHard, true},
		{"extreme", DifficultyExtreme, true},
		{"normal", DifficultyMedium, false},
		{"", DifficultyMedium, false},
	}

	for _, tc := range tests {
		preset, ok := ParseDifficulty(tc.in)
		if preset != tc.expected || ok != tc.ok {
			t.Errorf("ParseDifficulty(%q) = (%q, %v), expected (%q, %v)", tc.in, preset, ok, tc.expected, tc.ok)
		}
	}
}

func TestSpeedCurve(t *testing.T) {
	curve := NewSpeedCurve(DefaultSnakeConfig().Speed)

	initial := map[DifficultyPreset]int{
		DifficultyEasy:    200,
		DifficultyMedium:  150,
		DifficultyHard:    100,
		DifficultyExtreme: 75,
	}
	for preset, expected := range initial {
		if got := curve.InitialMS(preset); got != expected {
			t.Errorf("InitialMS(%s) = %d, expected %d", preset, got, expected)
		}
	}

	ms := curve.InitialMS(DifficultyMedium)
	for i := 0; i < 5; i++ {
		ms = curve.NextMS(ms)
	}
	if ms != 125 {
		t.Errorf("after 5 food speed = %d, expected 125", ms)
	}

	for i := 0; i < 100; i++ {
		ms = curve.NextMS(ms)
	}
	if ms != 50 {
		t.Errorf("speed should floor at 50, got %d", ms)
	}
}
