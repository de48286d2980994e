// Package config provides YAML-based game configuration loading, validation
// and difficulty management.
package config

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Speed       SpeedConfig       `yaml:"speed"`
	Progression ProgressionConfig `yaml:"progression"`
	Villagers   VillagerConfig    `yaml:"villagers"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Danger      DangerConfig      `yaml:"danger"`
	Settings    Settings          `yaml:"settings"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the tick interval curve in milliseconds.
type SpeedConfig struct {
	BaseMS      int `yaml:"base_ms"`
	DecrementMS int `yaml:"decrement_ms"`
	MinMS       int `yaml:"min_ms"`
}

// ProgressionConfig defines scoring and level advancement.
type ProgressionConfig struct {
	LevelThreshold int `yaml:"level_threshold"`
	MaxLevel       int `yaml:"max_level"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// VillagerConfig defines villager behaviour. Distances are in cells.
type VillagerConfig struct {
	UnlockLevel    int     `yaml:"unlock_level"`
	MaxCount       int     `yaml:"max_count"`
	ScaredDistance float64 `yaml:"scared_distance"`
	WanderChance   float64 `yaml:"wander_chance"`
}

// SpawnConfig defines placement budgets and densities.
type SpawnConfig struct {
	FoodAttempts      int     `yaml:"food_attempts"`
	ObstacleAttempts  int     `yaml:"obstacle_attempts"`
	VillagerAttempts  int     `yaml:"villager_attempts"`
	PropAttempts      int     `yaml:"prop_attempts"`
	SafeDistance      float64 `yaml:"safe_distance"`
	ObstaclesPerLevel int     `yaml:"obstacles_per_level"`
	BaseProps         int     `yaml:"base_props"`
	PropsPerLevel     int     `yaml:"props_per_level"`
	VillageLevel      int     `yaml:"village_level"`
}

// DangerConfig defines the hazard proximity radius in cells.
type DangerConfig struct {
	Distance float64 `yaml:"distance"`
}

// Settings are the player-facing options. Theme is cosmetic only.
type Settings struct {
	Difficulty      DifficultyPreset `yaml:"difficulty"`
	Theme           string           `yaml:"theme"`
	SoundEnabled    bool             `yaml:"sound_enabled"`
	ParticleEffects bool             `yaml:"particle_effects"`
}
