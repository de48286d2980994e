package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-village/internal/core"
)

// sample draws up to attempts random cells and returns the first accepted
// by valid. ok is false when every attempt was rejected.
func sample(rng *rand.Rand, g core.Grid, attempts int, valid func(core.Point) bool) (core.Point, bool) {
	for i := 0; i < attempts; i++ {
		p := g.RandomCell(rng)
		if valid(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

// placeFood moves the food to a random free cell. When sampling fails the
// board is swept column by column for a free cell away from the head, then
// for any free cell; if even that finds nothing the food keeps its position.
func (s *Session) placeFood() {
	head := s.head()
	safe := s.cfg.Spawn.SafeDistance
	away := func(p core.Point) bool {
		return s.IsFree(p) && s.grid.Distance(p, head) > safe
	}

	if p, ok := sample(s.rng, s.grid, s.cfg.Spawn.FoodAttempts, s.IsFree); ok {
		s.food = p
		return
	}
	if p, ok := s.sweep(away); ok {
		s.food = p
		return
	}
	if p, ok := s.sweep(s.IsFree); ok {
		s.food = p
	}
}

// sweep scans cells in column-major order and returns the first accepted.
func (s *Session) sweep(valid func(core.Point) bool) (core.Point, bool) {
	for cx := 0; cx < s.grid.Cols(); cx++ {
		for cy := 0; cy < s.grid.Rows(); cy++ {
			if p := s.grid.Cell(cx, cy); valid(p) {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

// placeObstacles replaces the obstacle set with level*ObstaclesPerLevel
// obstacles. Failed samples are skipped, so the set may be smaller.
func (s *Session) placeObstacles() {
	s.obstacles = s.obstacles[:0]
	head := s.head()
	valid := func(p core.Point) bool {
		return s.IsFree(p) && s.grid.Distance(p, head) > s.cfg.Spawn.SafeDistance
	}

	count := s.level * s.cfg.Spawn.ObstaclesPerLevel
	for i := 0; i < count; i++ {
		if p, ok := sample(s.rng, s.grid, s.cfg.Spawn.ObstacleAttempts, valid); ok {
			s.obstacles = append(s.obstacles, p)
		}
	}
}

// placeVillagers replaces the villager set with min(level, MaxCount)
// villagers, each at least SafeDistance cells from every snake segment.
func (s *Session) placeVillagers() {
	s.villagers = s.villagers[:0]
	valid := func(p core.Point) bool {
		return s.IsFree(p) && s.farFromSnake(p, s.cfg.Spawn.SafeDistance)
	}

	count := core.Min(s.level, s.cfg.Villagers.MaxCount)
	for i := 0; i < count; i++ {
		if p, ok := sample(s.rng, s.grid, s.cfg.Spawn.VillagerAttempts, valid); ok {
			s.villagers = append(s.villagers, Villager{Pos: p})
		}
	}
}

// addProps tops the prop set up to BaseProps + level*PropsPerLevel. Existing
// props are kept.
func (s *Session) addProps() {
	types := s.theme.PropTypes(s.level, s.cfg.Spawn.VillageLevel)
	if len(types) == 0 {
		return
	}

	target := s.cfg.Spawn.BaseProps + s.level*s.cfg.Spawn.PropsPerLevel
	for n := target - len(s.props); n > 0; n-- {
		p, ok := sample(s.rng, s.grid, s.cfg.Spawn.PropAttempts, s.IsFreeForProp)
		if !ok {
			continue
		}
		s.props = append(s.props, Prop{
			Pos:   p,
			Type:  types[s.rng.Intn(len(types))],
			Theme: s.theme.ID,
		})
	}
}
