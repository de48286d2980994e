package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-village/internal/audio"
	"github.com/vovakirdan/snake-village/internal/config"
	"github.com/vovakirdan/snake-village/internal/core"
	"github.com/vovakirdan/snake-village/internal/games/snake"
	"github.com/vovakirdan/snake-village/internal/registry"
	"github.com/vovakirdan/snake-village/internal/storage"
)

// bannerDuration is how long the level-up banner stays on screen.
const bannerDuration = 2 * time.Second

// Deps are the collaborators shared by every screen of a session.
type Deps struct {
	Config config.SnakeConfig
	Store  *storage.Store // nil disables score persistence
	Audio  audio.Player
	Logger *log.Logger
	Seed   int64 // 0 = time-based

	// SettingsPath is where the settings screen saves changes. Empty means
	// the user config file; PersistSettings=false keeps changes in memory.
	SettingsPath    string
	PersistSettings bool
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.NewNop(true)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Seed == 0 {
		d.Seed = time.Now().UnixNano()
	}
	return d
}

// GameModel drives one snake session: it owns the tick timer, maps keys to
// session controls and turns session events into sound, particles and a
// saved score.
type GameModel struct {
	deps     Deps
	settings config.Settings
	session  *snake.Session
	theme    registry.Theme
	screen   *core.Screen
	keys     *KeyMapper
	fx       *Particles
	snap     snake.Snapshot

	// gen is the generation of the live tick timer. Pause, resume, restart
	// and speed changes bump it so older timers are ignored.
	gen uint64

	sessionID   string
	highScore   int
	scoreSaved  bool
	bannerText  string
	bannerUntil time.Time
	now         func() time.Time

	width, height int
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a game for a terminal of the given size and starts
// the first session.
func NewGameModel(deps Deps, settings config.Settings, width, height int) GameModel {
	deps = deps.withDefaults()
	w, h := boardUnits(width, height, deps.Config.Board.CellSize)

	m := GameModel{
		deps:     deps,
		settings: settings,
		session: snake.New(deps.Config, core.RuntimeConfig{
			ScreenW: w,
			ScreenH: h,
			Seed:    deps.Seed,
		}),
		screen: core.NewScreen(width, height),
		keys:   NewKeyMapper(),
		fx:     NewParticles(deps.Seed),
		now:    time.Now,
		width:  width,
		height: height,
	}
	m.start()
	return m
}

// start begins a fresh session and invalidates any running timer.
func (m *GameModel) start() {
	m.snap = m.session.Start(m.settings.Difficulty, m.settings.Theme)
	m.theme, _ = registry.Get(m.snap.Theme) //nolint:errcheck // session resolves to a registered theme
	m.sessionID = storage.NewSessionID()
	m.scoreSaved = false
	m.bannerText = ""
	m.bannerUntil = time.Time{}
	m.fx.Clear()
	m.highScore = m.loadHighScore()
	m.gen = nextGen()

	m.deps.Logger.Debug("session started",
		"session", m.sessionID,
		"difficulty", m.snap.Difficulty,
		"theme", m.snap.Theme,
		"board", [2]int{m.snap.Cols(), m.snap.Rows()},
	)
}

func (m *GameModel) loadHighScore() int {
	if m.deps.Store == nil {
		return 0
	}
	high, err := m.deps.Store.HighScore(string(m.settings.Difficulty))
	if err != nil {
		m.deps.Logger.Warn("could not load high score", "error", err)
		return 0
	}
	return high
}

// Init arms the first tick.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.session.Speed())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		m.session.SetPendingDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionPause:
		return m.togglePause()

	case core.ActionBack:
		if m.snap.GameOver || m.snap.Paused {
			m.backToMenu = true
			return m, nil
		}
		return m.togglePause()

	case core.ActionRestart, core.ActionConfirm:
		if m.snap.GameOver || (action == core.ActionRestart && m.snap.Paused) {
			m.start()
			return m, tickCmd(m.gen, m.session.Speed())
		}

	case core.ActionMute:
		m.deps.Audio.SetMuted(!m.deps.Audio.Muted())
	}

	return m, nil
}

func (m GameModel) togglePause() (tea.Model, tea.Cmd) {
	if m.snap.GameOver {
		return m, nil
	}
	paused := m.session.TogglePause()
	m.snap = m.session.Snapshot()
	m.gen = nextGen()
	if paused {
		return m, nil
	}
	return m, tickCmd(m.gen, m.session.Speed())
}

// handleTick runs one simulation step and arms the next timer.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	speed := m.session.Speed()

	ev := m.session.Tick()
	m.fx.Step()
	m.handleEvent(ev)
	m.snap = m.session.Snapshot()

	if ev.Kind == snake.EventGameOver || m.snap.Paused {
		return m, nil
	}
	if m.snap.Speed != speed {
		m.gen = nextGen()
	}
	return m, tickCmd(m.gen, m.snap.Speed)
}

// handleEvent turns a session event into feedback and persistence.
func (m *GameModel) handleEvent(ev snake.Event) {
	if ev.DangerEntered {
		m.deps.Audio.Play(audio.CueDanger)
	}

	switch ev.Kind {
	case snake.EventFoodEaten:
		m.deps.Audio.Play(audio.CueEat)
		m.burst(ev.Eaten)

	case snake.EventLevelUp:
		m.deps.Audio.Play(audio.CueLevelUp)
		m.burst(ev.Eaten)
		m.bannerText = levelBanner(ev.Level)
		m.bannerUntil = m.now().Add(bannerDuration)
		m.deps.Logger.Debug("level up", "session", m.sessionID, "level", ev.Level, "score", ev.Score)

	case snake.EventGameOver:
		m.deps.Audio.Play(audio.CueGameOver)
		m.saveScore(ev)
	}
}

func (m *GameModel) burst(p core.Point) {
	if !m.settings.ParticleEffects {
		return
	}
	cs := m.deps.Config.Board.CellSize
	m.fx.Burst(p.X/cs, p.Y/cs)
}

// saveScore stores the final result once per session.
func (m *GameModel) saveScore(ev snake.Event) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	m.deps.Logger.Info("game over",
		"session", m.sessionID,
		"score", ev.Score,
		"level", ev.Level,
		"difficulty", m.settings.Difficulty,
	)
	if m.deps.Store == nil || ev.Score <= 0 {
		return
	}

	_, err := m.deps.Store.SaveScore(storage.ScoreEntry{
		SessionID:  m.sessionID,
		Difficulty: string(m.settings.Difficulty),
		Theme:      m.theme.ID,
		Score:      ev.Score,
		Level:      ev.Level,
	})
	if err != nil {
		m.deps.Logger.Warn("could not save score", "error", err)
		return
	}
	m.highScore = core.Max(m.highScore, ev.Score)
}

// resize recomputes the screen and board for a new terminal size.
func (m *GameModel) resize(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, height)
	w, h := boardUnits(width, height, m.deps.Config.Board.CellSize)
	m.session.Resize(w, h)
	m.snap = m.session.Snapshot()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	hud := hudInfo{
		HighScore: m.highScore,
		Muted:     m.deps.Audio.Muted(),
	}
	if m.now().Before(m.bannerUntil) {
		hud.Banner = m.bannerText
	}

	drawGame(m.screen, m.snap, m.theme, hud, m.fx)
	return RenderScreen(m.screen)
}

// Snapshot returns the last observed session state.
func (m GameModel) Snapshot() snake.Snapshot {
	return m.snap
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
