package snake

import "github.com/vovakirdan/snake-village/internal/core"

// MinBoardCells is the smallest playable board edge, in cells.
const MinBoardCells = 5

// Villager is a roaming entity that flees the snake. Villagers never cause
// collisions.
type Villager struct {
	Pos    core.Point
	Scared bool

	// RunDir is the direction of the last move, kept for animation.
	RunDir    core.Direction
	HasRunDir bool
}

// Prop is a decorative board element. It is ignored by gameplay rules.
type Prop struct {
	Pos   core.Point
	Type  string
	Theme string
}

// EventKind classifies the outcome of a tick.
type EventKind int

const (
	EventContinue EventKind = iota
	EventFoodEaten
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventContinue:
		return "continue"
	case EventFoodEaten:
		return "food_eaten"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is returned by Session.Tick.
type Event struct {
	Kind  EventKind
	Score int
	Level int // New level for EventLevelUp, final level for EventGameOver

	// Eaten is the cell where food was consumed (EventFoodEaten, EventLevelUp).
	Eaten core.Point

	// DangerEntered is set on the tick the head moves into danger.
	DangerEntered bool
}
