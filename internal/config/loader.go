package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-village/internal/registry"
)

// Load loads the game configuration. Fields missing from the file keep
// their default values.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultSnakeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// UserConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}

// Normalize replaces invalid values with defaults so they never reach the
// simulation. It returns one warning per substituted value.
func Normalize(cfg *SnakeConfig) []string {
	def := DefaultSnakeConfig()
	var warnings []string

	fixInt := func(name string, v *int, min, fallback int) {
		if *v < min {
			warnings = append(warnings, fmt.Sprintf("%s=%d is invalid, using %d", name, *v, fallback))
			*v = fallback
		}
	}
	fixFloat := func(name string, v *float64, min, max, fallback float64) {
		if *v < min || *v > max {
			warnings = append(warnings, fmt.Sprintf("%s=%g is invalid, using %g", name, *v, fallback))
			*v = fallback
		}
	}

	fixInt("board.cell_size", &cfg.Board.CellSize, 1, def.Board.CellSize)
	fixInt("speed.base_ms", &cfg.Speed.BaseMS, 1, def.Speed.BaseMS)
	fixInt("speed.decrement_ms", &cfg.Speed.DecrementMS, 0, def.Speed.DecrementMS)
	fixInt("speed.min_ms", &cfg.Speed.MinMS, 1, def.Speed.MinMS)
	fixInt("progression.level_threshold", &cfg.Progression.LevelThreshold, 1, def.Progression.LevelThreshold)
	fixInt("progression.max_level", &cfg.Progression.MaxLevel, 1, def.Progression.MaxLevel)
	fixInt("progression.points_per_level", &cfg.Progression.PointsPerLevel, 0, def.Progression.PointsPerLevel)
	fixInt("villagers.unlock_level", &cfg.Villagers.UnlockLevel, 1, def.Villagers.UnlockLevel)
	fixInt("villagers.max_count", &cfg.Villagers.MaxCount, 0, def.Villagers.MaxCount)
	fixFloat("villagers.scared_distance", &cfg.Villagers.ScaredDistance, 0, 1000, def.Villagers.ScaredDistance)
	fixFloat("villagers.wander_chance", &cfg.Villagers.WanderChance, 0, 1, def.Villagers.WanderChance)
	fixInt("spawn.food_attempts", &cfg.Spawn.FoodAttempts, 1, def.Spawn.FoodAttempts)
	fixInt("spawn.obstacle_attempts", &cfg.Spawn.ObstacleAttempts, 1, def.Spawn.ObstacleAttempts)
	fixInt("spawn.villager_attempts", &cfg.Spawn.VillagerAttempts, 1, def.Spawn.VillagerAttempts)
	fixInt("spawn.prop_attempts", &cfg.Spawn.PropAttempts, 1, def.Spawn.PropAttempts)
	fixFloat("spawn.safe_distance", &cfg.Spawn.SafeDistance, 0, 1000, def.Spawn.SafeDistance)
	fixInt("spawn.obstacles_per_level", &cfg.Spawn.ObstaclesPerLevel, 0, def.Spawn.ObstaclesPerLevel)
	fixInt("spawn.base_props", &cfg.Spawn.BaseProps, 0, def.Spawn.BaseProps)
	fixInt("spawn.props_per_level", &cfg.Spawn.PropsPerLevel, 0, def.Spawn.PropsPerLevel)
	fixInt("spawn.village_level", &cfg.Spawn.VillageLevel, 1, def.Spawn.VillageLevel)
	fixFloat("danger.distance", &cfg.Danger.Distance, 0, 1000, def.Danger.Distance)

	if cfg.Speed.MinMS > cfg.Speed.BaseMS {
		warnings = append(warnings, fmt.Sprintf("speed.min_ms=%d exceeds base_ms=%d, using %d",
			cfg.Speed.MinMS, cfg.Speed.BaseMS, cfg.Speed.BaseMS))
		cfg.Speed.MinMS = cfg.Speed.BaseMS
	}

	warnings = append(warnings, NormalizeSettings(&cfg.Settings)...)
	return warnings
}

// NormalizeSettings substitutes defaults for an unknown difficulty or theme.
func NormalizeSettings(s *Settings) []string {
	var warnings []string
	if preset, ok := ParseDifficulty(string(s.Difficulty)); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown difficulty %q, using %q", s.Difficulty, preset))
		s.Difficulty = preset
	}
	if !registry.Exists(s.Theme) {
		def := DefaultSettings().Theme
		warnings = append(warnings, fmt.Sprintf("unknown theme %q, using %q", s.Theme, def))
		s.Theme = def
	}
	return warnings
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// SaveSettings stores settings in the config file at path, keeping the other
// sections of an existing file. An empty path means UserConfigPath().
func SaveSettings(path string, s Settings) error {
	if path == "" {
		path = UserConfigPath()
		if path == "" {
			return fmt.Errorf("config: cannot resolve home directory")
		}
	}

	cfg := DefaultSnakeConfig()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}
	cfg.Settings = s

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
