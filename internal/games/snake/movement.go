package snake

import "github.com/vovakirdan/snake-village/internal/core"

// moveSnake advances the head one cell in the current direction. The tail
// is dropped unless the new head lands on food. Reports whether food was
// reached.
func (s *Session) moveSnake() bool {
	next := s.grid.Step(s.head(), s.direction)
	ate := next == s.food

	s.snake = append([]core.Point{next}, s.snake...)
	if !ate {
		s.snake = s.snake[:len(s.snake)-1]
	}
	return ate
}

// collided reports whether the head overlaps a body segment or an obstacle.
// Villagers never collide.
func (s *Session) collided() bool {
	head := s.head()
	for _, seg := range s.snake[1:] {
		if seg == head {
			return true
		}
	}
	for _, o := range s.obstacles {
		if o == head {
			return true
		}
	}
	return false
}
