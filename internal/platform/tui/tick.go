// Package tui provides the Bubble Tea front end for Snake Village.
// It handles the terminal UI loop, input mapping, and screen navigation.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the timer that
// produced it; ticks from a superseded timer are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd arms a one-shot timer for the given generation.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// tickGen hands out timer generations. It is process-wide so a timer left
// over from a closed game can never match a newer game's generation.
var tickGen atomic.Uint64

func nextGen() uint64 {
	return tickGen.Add(1)
}
