package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyMedium  DifficultyPreset = "medium"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// Difficulties lists the presets in increasing order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme}

// ParseDifficulty converts a string to a preset. ok is false for unknown
// values, in which case medium is returned.
func ParseDifficulty(s string) (preset DifficultyPreset, ok bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme:
		return DifficultyPreset(s), true
	default:
		return DifficultyMedium, false
	}
}

// SpeedOffsetMS returns the amount added to the base tick interval.
// Positive values slow the game down.
func SpeedOffsetMS(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 50
	case DifficultyHard:
		return -50
	case DifficultyExtreme:
		return -75
	default:
		return 0
	}
}

// SpeedCurve calculates the tick interval as food is eaten.
type SpeedCurve struct {
	cfg SpeedConfig
}

// NewSpeedCurve creates a speed curve from config.
func NewSpeedCurve(cfg SpeedConfig) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// InitialMS returns the starting interval for a difficulty preset.
func (c SpeedCurve) InitialMS(preset DifficultyPreset) int {
	return max(c.cfg.MinMS, c.cfg.BaseMS+SpeedOffsetMS(preset))
}

// NextMS returns the interval after one more food has been eaten.
func (c SpeedCurve) NextMS(currentMS int) int {
	return max(c.cfg.MinMS, currentMS-c.cfg.DecrementMS)
}

// Duration converts an interval in milliseconds to a time.Duration.
func Duration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
