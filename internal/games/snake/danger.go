package snake

import "github.com/vovakirdan/snake-village/internal/core"

// evaluateDanger reports whether the head is within Danger.Distance cells of
// a board edge, a folded-back body segment, or an obstacle. Body segments
// are not filtered by the usual neck rule (skip only those within one cell):
// that rule flags every straight body of three or more segments.
func (s *Session) evaluateDanger() bool {
	if len(s.snake) == 0 {
		return false
	}
	head := s.head()
	limit := s.cfg.Danger.Distance

	edge := int(limit * float64(s.grid.CellSize))
	if head.X <= edge || head.X >= s.grid.Width-edge ||
		head.Y <= edge || head.Y >= s.grid.Height-edge {
		return true
	}

	for i := 1; i < len(s.snake); i++ {
		seg := s.snake[i]
		// A segment no closer than its index along the body is trailing
		// behind the head, not in its way.
		if s.manhattan(head, seg) >= i {
			continue
		}
		if s.grid.Distance(head, seg) <= limit {
			return true
		}
	}

	for _, o := range s.obstacles {
		if s.grid.Distance(head, o) <= limit {
			return true
		}
	}
	return false
}

// manhattan returns the taxicab distance between a and b in cells.
func (s *Session) manhattan(a, b core.Point) int {
	return (core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)) / s.grid.CellSize
}
