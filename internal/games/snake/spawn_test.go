package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
)

func TestSample(t *testing.T) {
	g := core.NewGrid(200, 200, 20)
	rng := rand.New(rand.NewSource(1))

	p, ok := sample(rng, g, 100, func(p core.Point) bool { return p.X >= 100 })
	if !ok || p.X < 100 || !g.Contains(p) {
		t.Errorf("sample() = %v, %v, expected a cell in the right half", p, ok)
	}
	if _, ok := sample(rng, g, 100, func(core.Point) bool { return false }); ok {
		t.Error("sample() with an unsatisfiable predicate returned ok")
	}
	if _, ok := sample(rng, g, 0, func(core.Point) bool { return true }); ok {
		t.Error("sample() with zero attempts returned ok")
	}
}

func TestPlaceFoodNeverOccupied(t *testing.T) {
	s := newTestSession(t)
	s.level = 5
	s.levelUp()

	for i := 0; i < 200; i++ {
		s.placeFood()
		for _, seg := range s.snake {
			if seg == s.food {
				t.Fatalf("food placed on snake segment %v", seg)
			}
		}
		for _, o := range s.obstacles {
			if o == s.food {
				t.Fatalf("food placed on obstacle %v", o)
			}
		}
		for _, v := range s.villagers {
			if v.Pos == s.food {
				t.Fatalf("food placed on villager %v", v.Pos)
			}
		}
		if !s.grid.Contains(s.food) {
			t.Fatalf("food %v outside board", s.food)
		}
	}
}

func TestPlaceFoodCanLandNearHead(t *testing.T) {
	s := newTestSession(t)
	head := s.head()
	safe := s.cfg.Spawn.SafeDistance

	near := 0
	for i := 0; i < 2000; i++ {
		s.placeFood()
		if !s.grid.Contains(s.food) {
			t.Fatalf("food %v outside board", s.food)
		}
		for _, seg := range s.snake {
			if seg == s.food {
				t.Fatalf("food placed on snake segment %v", seg)
			}
		}
		if s.grid.Distance(s.food, head) <= safe {
			near++
		}
	}

	// About 80 of the 900 cells lie within 5 cells of the head.
	if near == 0 {
		t.Errorf("food within %v cells of the head: 0 of 2000, expected some", safe)
	}
}

func TestPlaceFoodSweepFallback(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Spawn.FoodAttempts = 0

	s := New(cfg, core.DefaultConfig())
	s.Start(config.DifficultyMedium, "forest")

	// Column 0 is scanned first; rows within 4 of the head row are too close.
	if s.food != cell(0, 0) {
		t.Errorf("food = %v, expected %v", s.food, cell(0, 0))
	}
}

func TestPlaceFoodSweepIgnoresDistanceWhenCrowded(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Spawn.FoodAttempts = 0

	s := New(cfg, core.RuntimeConfig{ScreenW: 100, ScreenH: 100, Seed: 1})
	s.Start(config.DifficultyMedium, "forest")

	// No cell on a 5x5 board is more than 5 cells from the head.
	if s.food != cell(0, 0) {
		t.Errorf("food = %v, expected %v", s.food, cell(0, 0))
	}
}

func TestPlaceFoodFullBoardKeepsPosition(t *testing.T) {
	s := New(config.DefaultSnakeConfig(), core.RuntimeConfig{ScreenW: 100, ScreenH: 100, Seed: 1})
	s.Start(config.DifficultyMedium, "forest")

	s.obstacles = nil
	for cx := 0; cx < 5; cx++ {
		for cy := 0; cy < 5; cy++ {
			if p := cell(cx, cy); s.IsFree(p) {
				s.obstacles = append(s.obstacles, p)
			}
		}
	}
	food := s.food
	s.placeFood()
	if s.food != food {
		t.Errorf("food = %v, expected it to stay at %v on a full board", s.food, food)
	}
}

func TestAddPropsTopsUp(t *testing.T) {
	s := newTestSession(t)
	s.props = nil
	s.level = 3
	s.addProps()

	if len(s.props) > 16 {
		t.Errorf("len(props) = %d, expected at most 16", len(s.props))
	}
	seen := make(map[core.Point]bool)
	pool := make(map[string]bool)
	for _, typ := range s.theme.PropTypes(3, 3) {
		pool[typ] = true
	}
	for _, p := range s.props {
		if seen[p.Pos] {
			t.Errorf("two props share cell %v", p.Pos)
		}
		seen[p.Pos] = true
		if !pool[p.Type] {
			t.Errorf("prop type %q not in the level 3 pool", p.Type)
		}
		if !s.IsFree(p.Pos) {
			t.Errorf("prop at %v overlaps a gameplay entity", p.Pos)
		}
	}

	before := len(s.props)
	s.addProps()
	if len(s.props) < before {
		t.Errorf("addProps() removed props: %d -> %d", before, len(s.props))
	}
}

func TestIsFree(t *testing.T) {
	s := newTestSession(t)
	s.food = cell(10, 10)
	s.obstacles = []core.Point{cell(11, 11)}
	s.villagers = []Villager{{Pos: cell(12, 12)}}
	s.props = []Prop{{Pos: cell(13, 13), Type: "tree"}}

	tests := []struct {
		p       core.Point
		free    bool
		forProp bool
	}{
		{s.head(), false, false},
		{cell(10, 10), false, false},
		{cell(11, 11), false, false},
		{cell(12, 12), false, false},
		{cell(13, 13), true, false},
		{cell(14, 14), true, true},
	}

	for _, tt := range tests {
		if got := s.IsFree(tt.p); got != tt.free {
			t.Errorf("IsFree(%v) = %v, expected %v", tt.p, got, tt.free)
		}
		if got := s.IsFreeForProp(tt.p); got != tt.forProp {
			t.Errorf("IsFreeForProp(%v) = %v, expected %v", tt.p, got, tt.forProp)
		}
	}
}
