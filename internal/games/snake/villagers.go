package snake

import "github.com/vovakirdan/snake-village/internal/core"

// moveVillagers runs one step of villager behaviour. A villager within
// ScaredDistance cells of the head flees along the dominant axis; otherwise
// it wanders with probability WanderChance. Moves onto occupied or
// off-board cells are skipped (villagers do not wrap).
func (s *Session) moveVillagers() {
	head := s.head()
	for i := range s.villagers {
		v := &s.villagers[i]
		v.Scared = s.grid.Distance(head, v.Pos) < s.cfg.Villagers.ScaredDistance

		var (
			dir   core.Direction
			moves bool
		)
		switch {
		case v.Scared:
			dir, moves = fleeDirection(head, v.Pos), true
		case s.rng.Float64() < s.cfg.Villagers.WanderChance:
			dir, moves = core.Directions[s.rng.Intn(len(core.Directions))], true
		}
		if !moves {
			continue
		}

		dx, dy := dir.Delta()
		dest := v.Pos.Add(dx*s.grid.CellSize, dy*s.grid.CellSize)
		if !s.grid.Contains(dest) || !s.IsFree(dest) {
			continue
		}
		v.Pos = dest
		v.RunDir = dir
		v.HasRunDir = true
	}
}

// fleeDirection picks the direction away from head along the axis with the
// larger separation. Ties favour the vertical axis.
func fleeDirection(head, pos core.Point) core.Direction {
	dx := head.X - pos.X
	dy := head.Y - pos.Y
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return core.DirLeft
		}
		return core.DirRight
	}
	if dy > 0 {
		return core.DirUp
	}
	return core.DirDown
}
