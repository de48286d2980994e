// Package audio plays short synthesized cues for game events. Playback is
// best-effort: a missing or broken audio device disables sound and is
// logged once, it never interrupts a game.
package audio

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueDanger
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueDanger:
		return "danger"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must be safe to call from the UI
// goroutine without blocking.
type Player interface {
	Play(c Cue)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// Nop is a Player that only tracks the mute flag. It is used for remote
// sessions, where there is no local speaker to play through.
type Nop struct {
	muted bool
}

// NewNop creates a silent player.
func NewNop(muted bool) *Nop {
	return &Nop{muted: muted}
}

func (n *Nop) Play(Cue)            {}
func (n *Nop) SetMuted(muted bool) { n.muted = muted }
func (n *Nop) Muted() bool         { return n.muted }
func (n *Nop) Close()              {}
