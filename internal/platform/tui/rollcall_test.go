package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/townsfolk/internal/registry"
)

func sampleTallies() []registry.Tally {
	return []registry.Tally{
		{Player: "Player 1", Items: []string{"Ivy Curry", "Bob Star"}},
		{Player: "Player 2", Items: []string{"Uma Wynn"}},
	}
}

func TestRollCallRows(t *testing.T) {
	m := NewRollCallModel("Player 1 wins!", sampleTallies(), 100, 30)

	rows := m.Rows()
	if len(rows) != 2 || rows[0][1] != "Ivy Curry" || rows[1][0] != "2" {
		t.Errorf("rows = %v", rows)
	}

	view := m.View()
	for _, want := range []string{"ROLL CALL - Player 1 (2)", "Player 1 wins!", "Player 2: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRollCallSwitchPlayers(t *testing.T) {
	m := NewRollCallModel("", sampleTallies(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RollCallModel)
	if m.Player() != 1 || len(m.Rows()) != 1 || m.Rows()[0][1] != "Uma Wynn" {
		t.Errorf("after tab: player %d rows %v", m.Player(), m.Rows())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RollCallModel)
	if m.Player() != 0 {
		t.Errorf("tab should wrap to the first player, got %d", m.Player())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(RollCallModel).Player() != 1 {
		t.Error("shift+tab should wrap to the last player")
	}
}

func TestRollCallEmpty(t *testing.T) {
	tallies := []registry.Tally{{Player: "Player 1"}, {Player: "Player 2"}}
	m := NewRollCallModel("", tallies, 60, 20)
	if !strings.Contains(m.View(), "Nobody collected yet.") {
		t.Error("expected the empty message")
	}
}

func TestRollCallClose(t *testing.T) {
	m := NewRollCallModel("", sampleTallies(), 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.(RollCallModel).View() != "" {
		t.Error("q should close the roll call")
	}
}
