// Package tui provides the Bubble Tea front-end for the snake game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The model converts the time
// between frames into fixed simulation steps.
type FrameMsg struct {
	Time time.Time
	Loop uint64 // Frame loop that scheduled the message
}

// loopSeq numbers frame loops so a model ignores frames left over from a
// previous game in the same program.
var loopSeq atomic.Uint64

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Loop: loop}
	})
}
