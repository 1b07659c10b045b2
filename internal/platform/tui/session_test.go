package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.view != viewGame || s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if s.game.game.ID() != "fake" {
		t.Errorf("started %s, expected fake", s.game.game.ID())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(SessionModel)
	if s.view != viewMenu || s.game != nil {
		t.Fatal("esc should return to the menu")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = m.(SessionModel)
	if s.view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}
	if s.View() == "" {
		t.Error("scoreboard should render without a store")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

func TestSessionIgnoresStaleFrames(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := m.(SessionModel).game.loop
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(FrameMsg{Loop: first})
	if cmd != nil {
		t.Error("frame from a previous game should not restart its loop")
	}
}
