// Package snake implements the Snake Village simulation: a snake on a
// wrapping board that eats food, levels up, avoids its own body and
// obstacles, and scares villagers away.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
	"github.com/vovakirdan/snake-village/internal/registry"
	"github.com/vovakirdan/snake-village/internal/themes"
)

// Session owns all mutable game state. It is not safe for concurrent use;
// the tick driver and input handlers must run on one goroutine.
type Session struct {
	cfg   config.SnakeConfig
	curve config.SpeedCurve
	rng   *rand.Rand
	tick  uint64

	grid     core.Grid
	tooSmall bool

	// Snake state
	snake     []core.Point // Head at index 0
	direction core.Direction
	pending   core.Direction // Latched input, applied on the next tick

	food      core.Point
	obstacles []core.Point
	villagers []Villager
	props     []Prop

	score     int
	level     int
	foodEaten int // Food eaten in current level
	speedMS   int

	difficulty config.DifficultyPreset
	theme      registry.Theme

	paused   bool
	gameOver bool
	inDanger bool
}

// New creates a session sized to the runtime viewport. Call Start before
// the first tick.
func New(cfg config.SnakeConfig, rt core.RuntimeConfig) *Session {
	s := &Session{
		cfg:   cfg,
		curve: config.NewSpeedCurve(cfg.Speed),
		rng:   rand.New(rand.NewSource(rt.Seed)),
	}
	s.setGrid(rt.ScreenW, rt.ScreenH)
	return s
}

// Start resets every entity and begins a new game.
func (s *Session) Start(difficulty config.DifficultyPreset, theme string) Snapshot {
	s.difficulty = difficulty
	s.theme = resolveTheme(theme)

	s.tick = 0
	s.score = 0
	s.level = 1
	s.foodEaten = 0
	s.speedMS = s.curve.InitialMS(difficulty)
	s.paused = false
	s.gameOver = false
	s.layout()

	return s.Snapshot()
}

// layout places a fresh snake and spawns every entity around it.
func (s *Session) layout() {
	s.obstacles = nil
	s.villagers = nil
	s.props = nil

	s.initSnake()
	s.placeFood()
	if s.level >= s.cfg.Villagers.UnlockLevel {
		s.placeVillagers()
	}
	s.addProps()
	s.inDanger = s.evaluateDanger()
}

func resolveTheme(id string) registry.Theme {
	if t, err := registry.Get(id); err == nil {
		return t
	}
	t, _ := registry.Get(themes.Default) //nolint:errcheck // built-in theme always registered
	return t
}

// initSnake places a three-segment snake heading right.
func (s *Session) initSnake() {
	row := core.Min(10, s.grid.Rows()/2)
	s.snake = []core.Point{
		s.grid.Wrap(s.grid.Cell(3, row)), // Head
		s.grid.Wrap(s.grid.Cell(2, row)),
		s.grid.Wrap(s.grid.Cell(1, row)),
	}
	s.direction = core.DirRight
	s.pending = core.DirRight
}

// Tick advances the simulation by one step.
func (s *Session) Tick() Event {
	if s.gameOver {
		return Event{Kind: EventGameOver, Score: s.score, Level: s.level}
	}
	if s.paused || s.tooSmall {
		return Event{Kind: EventContinue, Score: s.score, Level: s.level}
	}
	s.tick++

	// Apply buffered direction
	s.direction = s.pending

	ate := s.moveSnake()

	if s.level >= s.cfg.Villagers.UnlockLevel {
		s.moveVillagers()
	}

	if s.collided() {
		s.gameOver = true
		return Event{Kind: EventGameOver, Score: s.score, Level: s.level}
	}

	ev := Event{Kind: EventContinue}
	if ate {
		ev = s.eat()
	}

	wasInDanger := s.inDanger
	s.inDanger = s.evaluateDanger()
	ev.DangerEntered = s.inDanger && !wasInDanger

	ev.Score = s.score
	ev.Level = s.level
	return ev
}

// SetPendingDirection latches the direction for the next tick. A direction
// opposite to the current one is rejected.
func (s *Session) SetPendingDirection(dir core.Direction) bool {
	if s.gameOver || dir == s.direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// SetPaused suspends or resumes the simulation.
func (s *Session) SetPaused(paused bool) {
	if s.gameOver {
		return
	}
	s.paused = paused
}

// TogglePause flips the paused state and returns the new value.
func (s *Session) TogglePause() bool {
	s.SetPaused(!s.paused)
	return s.paused
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Playable reports whether ticks currently advance the game.
func (s *Session) Playable() bool {
	return !s.gameOver && !s.paused && !s.tooSmall
}

// Speed returns the current tick interval.
func (s *Session) Speed() time.Duration {
	return config.Duration(s.speedMS)
}

// Settings returns the difficulty and theme the session was started with.
func (s *Session) Settings() (config.DifficultyPreset, string) {
	return s.difficulty, s.theme.ID
}

// Resize recomputes the board from a new viewport size. It must be called
// between ticks. Entities that fall outside a shrunken board are folded back
// (snake), dropped (obstacles, villagers, props) or re-placed (food). A game
// started on a board too small to play is laid out afresh once the board
// becomes playable, provided no tick has run yet.
func (s *Session) Resize(widthPx, heightPx int) {
	wasTooSmall := s.tooSmall
	s.setGrid(widthPx, heightPx)
	if s.grid.Cols() == 0 || s.grid.Rows() == 0 || len(s.snake) == 0 {
		return
	}

	if wasTooSmall && !s.tooSmall && s.tick == 0 {
		s.layout()
		return
	}

	for i := range s.snake {
		s.snake[i] = s.grid.Wrap(s.snake[i])
	}
	s.obstacles = keepClear(s, s.obstacles, func(p core.Point) core.Point { return p })
	s.villagers = keepClear(s, s.villagers, func(v Villager) core.Point { return v.Pos })
	s.props = keepClear(s, s.props, func(p Prop) core.Point { return p.Pos })

	if !s.grid.Contains(s.food) || s.onSnake(s.food) {
		s.placeFood()
	}
	s.inDanger = s.evaluateDanger()
}

func (s *Session) setGrid(widthPx, heightPx int) {
	s.grid = core.NewGrid(widthPx, heightPx, s.cfg.Board.CellSize)
	s.tooSmall = s.grid.Cols() < MinBoardCells || s.grid.Rows() < MinBoardCells
}

// keepClear drops items outside the board or under a snake segment.
func keepClear[T any](s *Session, items []T, pos func(T) core.Point) []T {
	kept := items[:0]
	for _, it := range items {
		if p := pos(it); s.grid.Contains(p) && !s.onSnake(p) {
			kept = append(kept, it)
		}
	}
	return kept
}
