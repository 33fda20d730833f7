package townsfolk

import "github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSelecting   GameStateType = "selecting"
	StateConfirming  GameStateType = "confirming"
	StateFading      GameStateType = "fading"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Variant    string
	Size       int
	Turns      int
	Active     engine.Player
	Cursor     engine.Coord
	HasPending bool
	Pending    engine.Coord
	Player1    int // Townsfolk collected by player 1
	Player2    int
	Remaining  int
	FadeTicks  int
	ShowScores bool
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.ctrl.State()

	state := StateSelecting
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case st.Terminal:
		state = StateGameOver
	case g.fadeTicks > 0:
		state = StateFading
	case st.Phase == engine.PhaseAwaitingConfirmation:
		state = StateConfirming
	}

	s := Snapshot{
		Tick:       g.tick,
		Variant:    g.variant.ID,
		Size:       g.ctrl.Size(),
		Turns:      g.turns,
		Active:     st.ActivePlayer,
		Cursor:     g.cursor,
		Player1:    st.Count(engine.Player1),
		Player2:    st.Count(engine.Player2),
		Remaining:  g.ctrl.Remaining(),
		FadeTicks:  g.fadeTicks,
		ShowScores: g.showScores,
		State:      state,
	}
	if st.PendingSelection != nil {
		s.HasPending = true
		s.Pending = *st.PendingSelection
	}
	return s
}
