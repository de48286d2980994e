package config

import (
	_ "embed"

	"github.com/vovakirdan/snake-village/internal/themes"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hard-coded default configuration.
// It mirrors defaults/snake.yaml and is the fallback if the embed fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			CellSize: 20,
		},
		Speed: SpeedConfig{
			BaseMS:      150,
			DecrementMS: 5,
			MinMS:       50,
		},
		Progression: ProgressionConfig{
			LevelThreshold: 5,
			MaxLevel:       15,
			PointsPerLevel: 10,
		},
		Villagers: VillagerConfig{
			UnlockLevel:    2,
			MaxCount:       10,
			ScaredDistance: 5,
			WanderChance:   0.1,
		},
		Spawn: SpawnConfig{
			FoodAttempts:      100,
			ObstacleAttempts:  50,
			VillagerAttempts:  50,
			PropAttempts:      30,
			SafeDistance:      5,
			ObstaclesPerLevel: 2,
			BaseProps:         10,
			PropsPerLevel:     2,
			VillageLevel:      3,
		},
		Danger: DangerConfig{
			Distance: 3,
		},
		Settings: DefaultSettings(),
	}
}

// DefaultSettings returns the default player settings.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:      DifficultyMedium,
		Theme:           themes.Default,
		SoundEnabled:    true,
		ParticleEffects: true,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
