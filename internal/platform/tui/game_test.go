package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
	"github.com/vovakirdan/snake-village/internal/games/snake"
	"github.com/vovakirdan/snake-village/internal/storage"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	deps := Deps{
		Config: config.DefaultSnakeConfig(),
		Store:  store,
		Seed:   1,
	}
	return NewGameModel(deps, config.DefaultSettings(), 80, 24)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestBoardUnits(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{80, 24, 39 * 20, 20 * 20},
		{12, 9, 5 * 20, 5 * 20},
		{2, 3, 0, 0},
	}
	for _, tt := range tests {
		w, h := boardUnits(tt.w, tt.h, 20)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("boardUnits(%d, %d) = %dx%d, expected %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestGameModelDropsStaleTick(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := update(t, m, TickMsg{Gen: m.gen + 1000})
	if cmd != nil {
		t.Error("Stale tick should not arm a timer")
	}
	if m.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d after stale tick, expected 0", m.Snapshot().Tick)
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("Current tick should arm the next timer")
	}
	if m.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.Snapshot().Tick)
	}
}

func TestGameModelPauseStopsTimer(t *testing.T) {
	m := newTestGame(t, nil)
	oldGen := m.gen

	m, cmd := update(t, m, keyRunes("p"))
	if cmd != nil {
		t.Error("Pausing should not arm a timer")
	}
	if !m.Snapshot().Paused {
		t.Fatal("Game should be paused")
	}

	m, _ = update(t, m, TickMsg{Gen: oldGen})
	if m.Snapshot().Tick != 0 {
		t.Error("Tick from before the pause should be dropped")
	}

	pausedGen := m.gen
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Error("Resuming should arm a timer")
	}
	if m.Snapshot().Paused {
		t.Error("Game should be running after resume")
	}
	if m.gen == pausedGen || m.gen == oldGen {
		t.Error("Resume should start a new timer generation")
	}
}

func TestGameModelDirectionKey(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	if got := m.Snapshot().Direction; got != core.DirUp {
		t.Errorf("Direction = %v, expected %v", got, core.DirUp)
	}
}

func TestGameModelEscPausesThenLeaves(t *testing.T) {
	m := newTestGame(t, nil)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ = update(t, m, esc)
	if !m.Snapshot().Paused || m.BackToMenu() {
		t.Fatal("First esc should pause without leaving")
	}

	m, _ = update(t, m, esc)
	if !m.BackToMenu() {
		t.Error("Esc while paused should go back to menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	ev := snake.Event{Kind: snake.EventGameOver, Score: 30, Level: 2}
	m.handleEvent(ev)
	m.handleEvent(ev)

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 30 || scores[0].Level != 2 || scores[0].Difficulty != "medium" {
		t.Errorf("Saved entry = %+v, expected score 30 level 2 on medium", scores[0])
	}
	if m.highScore != 30 {
		t.Errorf("highScore = %d, expected 30", m.highScore)
	}

	// A restart is a new session with its own save.
	m.start()
	m.handleEvent(snake.Event{Kind: snake.EventGameOver, Score: 10, Level: 1})
	scores, _ = store.TopScores("", 10)
	if len(scores) != 2 {
		t.Errorf("Saved %d scores after restart, expected 2", len(scores))
	}
	if m.highScore != 30 {
		t.Errorf("highScore = %d after lower score, expected 30", m.highScore)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	m.handleEvent(snake.Event{Kind: snake.EventGameOver})

	if high, _ := store.HighScore(""); high != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", high)
	}
}

func TestGameModelLevelBanner(t *testing.T) {
	m := newTestGame(t, nil)
	m.handleEvent(snake.Event{Kind: snake.EventLevelUp, Score: 50, Level: 2})

	if !strings.Contains(m.View(), "LEVEL 2!") {
		t.Error("View() should show the level-up banner")
	}

	later := m.now().Add(bannerDuration + 1)
	m.now = func() time.Time { return later }
	if strings.Contains(m.View(), "LEVEL 2!") {
		t.Error("Banner should disappear after its duration")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGame(t, nil)

	view := m.View()
	if !strings.Contains(view, "Score 0") {
		t.Error("View() should contain the HUD score")
	}
	if !strings.Contains(view, "Level 1") {
		t.Error("View() should contain the HUD level")
	}
}

func TestGameModelTooSmall(t *testing.T) {
	deps := Deps{Config: config.DefaultSnakeConfig(), Seed: 1}
	m := NewGameModel(deps, config.DefaultSettings(), 80, 7)

	if !m.Snapshot().TooSmall {
		t.Fatal("80x7 terminal should be too small")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should explain the terminal is too small")
	}

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if m.Snapshot().Tick != 0 {
		t.Error("Ticks should not advance a too-small board")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.Snapshot().TooSmall {
		t.Error("Board should be playable after growing the terminal")
	}
}
