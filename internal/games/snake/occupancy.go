package snake

import "github.com/vovakirdan/snake-village/internal/core"

// IsFree reports whether p holds no snake segment, food, obstacle or
// villager. Props do not block placement.
func (s *Session) IsFree(p core.Point) bool {
	if s.onSnake(p) || s.food == p {
		return false
	}
	for _, o := range s.obstacles {
		if o == p {
			return false
		}
	}
	for _, v := range s.villagers {
		if v.Pos == p {
			return false
		}
	}
	return true
}

func (s *Session) onSnake(p core.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// IsFreeForProp is IsFree with the additional requirement that no other
// prop occupies p.
func (s *Session) IsFreeForProp(p core.Point) bool {
	if !s.IsFree(p) {
		return false
	}
	for _, pr := range s.props {
		if pr.Pos == p {
			return false
		}
	}
	return true
}

// farFromSnake reports whether every segment is at least minDist cells
// away from p.
func (s *Session) farFromSnake(p core.Point, minDist float64) bool {
	for _, seg := range s.snake {
		if s.grid.Distance(seg, p) < minDist {
			return false
		}
	}
	return true
}

func (s *Session) head() core.Point {
	return s.snake[0]
}
