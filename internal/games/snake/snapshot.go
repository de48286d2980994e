package snake

import (
	"time"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
)

// Snapshot is a read-only copy of session state for rendering and tests.
// Mutating it has no effect on the session.
type Snapshot struct {
	Snake     []core.Point // Head at index 0
	Food      core.Point
	Obstacles []core.Point
	Villagers []Villager
	Props     []Prop

	Score     int
	Level     int
	FoodEaten int
	Speed     time.Duration
	Direction core.Direction
	InDanger  bool
	Paused    bool
	GameOver  bool
	TooSmall  bool
	Tick      uint64

	Width, Height, CellSize int

	Difficulty config.DifficultyPreset
	Theme      string
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Snake:      append([]core.Point(nil), s.snake...),
		Food:       s.food,
		Obstacles:  append([]core.Point(nil), s.obstacles...),
		Villagers:  append([]Villager(nil), s.villagers...),
		Props:      append([]Prop(nil), s.props...),
		Score:      s.score,
		Level:      s.level,
		FoodEaten:  s.foodEaten,
		Speed:      s.Speed(),
		Direction:  s.direction,
		InDanger:   s.inDanger,
		Paused:     s.paused,
		GameOver:   s.gameOver,
		TooSmall:   s.tooSmall,
		Tick:       s.tick,
		Width:      s.grid.Width,
		Height:     s.grid.Height,
		CellSize:   s.grid.CellSize,
		Difficulty: s.difficulty,
		Theme:      s.theme.ID,
	}
}

// Cols returns the board width in cells.
func (s Snapshot) Cols() int {
	if s.CellSize == 0 {
		return 0
	}
	return s.Width / s.CellSize
}

// Rows returns the board height in cells.
func (s Snapshot) Rows() int {
	if s.CellSize == 0 {
		return 0
	}
	return s.Height / s.CellSize
}
