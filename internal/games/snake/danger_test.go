package snake

import (
	"testing"

	"github.com/vovakirdan/snake-village/internal/core"
)

func TestEvaluateDanger(t *testing.T) {
	tests := []struct {
		name      string
		snake     []core.Point
		obstacles []core.Point
		expected  bool
	}{
		{"corner", []core.Point{{X: 0, Y: 0}}, nil, true},
		{"center", []core.Point{{X: 300, Y: 300}}, nil, false},
		{"straight body", []core.Point{cell(15, 15), cell(14, 15), cell(13, 15), cell(12, 15)}, nil, false},
		{"left edge", []core.Point{cell(3, 15)}, nil, true},
		{"right edge", []core.Point{cell(27, 15)}, nil, true},
		{"just inside edges", []core.Point{cell(4, 26)}, nil, false},
		{"obstacle 3 cells away", []core.Point{cell(15, 15)}, []core.Point{cell(18, 15)}, true},
		{"obstacle 4 cells away", []core.Point{cell(15, 15)}, []core.Point{cell(19, 15)}, false},
		{
			"folded body",
			[]core.Point{
				cell(15, 15), cell(15, 14), cell(16, 14), cell(17, 14),
				cell(17, 15), cell(17, 16),
			},
			nil, true,
		},
	}

	for _, tt := range tests {
		s := newTestSession(t)
		s.snake = tt.snake
		s.obstacles = tt.obstacles
		if got := s.evaluateDanger(); got != tt.expected {
			t.Errorf("%s: evaluateDanger() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestDangerEnteredEvent(t *testing.T) {
	s := newTestSession(t)
	s.food = cell(25, 25)
	s.snake = []core.Point{cell(15, 15), cell(14, 15), cell(13, 15)}
	s.obstacles = []core.Point{cell(19, 15)}
	s.inDanger = s.evaluateDanger()
	if s.inDanger {
		t.Fatal("expected to start out of danger")
	}

	ev := s.Tick()
	if !ev.DangerEntered || !s.Snapshot().InDanger {
		t.Errorf("Tick() DangerEntered = %v, expected true", ev.DangerEntered)
	}

	ev = s.Tick()
	if ev.DangerEntered {
		t.Error("DangerEntered reported twice for the same approach")
	}
}
