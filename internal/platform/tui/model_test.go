package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/townsfolk/internal/core"
)

// fakeGame records what the platform hands it.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	over    bool
}

func (g *fakeGame) ID() string                { return "fake" }
func (g *fakeGame) Title() string             { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)  { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)   { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState     { return core.GameState{GameOver: g.over} }
func (g *fakeGame) Resize(w, h int)           { g.resized = [2]int{w, h} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			cp.Set(a)
		}
	}
	g.frames = append(g.frames, cp)
	return core.StepResult{State: g.State()}
}

func TestModelPassesActionsOnTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 30, Seed: 1}, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionConfirm) {
		t.Fatalf("game did not get Confirm: %+v", g.frames)
	}

	m.Update(TickMsg{})
	if len(g.frames) != 2 || !g.frames[1].Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", g.resized)
	}
	if g.resets != 0 {
		t.Error("a resizable game must not be reset")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSeedDefaultsToClock(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 2}, nil)
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
