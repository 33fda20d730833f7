package engine

import (
	"errors"
	"testing"
)

func newTestController(t *testing.T, n int) *Controller {
	t.Helper()
	c, err := NewController(n, SequentialIdentities("t"))
	if err != nil {
		t.Fatalf("NewController(%d) failed: %v", n, err)
	}
	return c
}

func TestControllerInitialState(t *testing.T) {
	c := newTestController(t, 3)
	s := c.State()

	if s.Phase != PhaseAwaitingSelection {
		t.Errorf("Phase = %v, want AwaitingSelection", s.Phase)
	}
	if s.ActivePlayer != Player1 {
		t.Errorf("ActivePlayer = %v, want Player1", s.ActivePlayer)
	}
	if s.PendingSelection != nil || s.Terminal {
		t.Errorf("unexpected state %+v", s)
	}
	if s.Count(Player1) != 0 || s.Count(Player2) != 0 {
		t.Error("scores should start empty")
	}
	if c.Remaining() != 27 {
		t.Errorf("Remaining = %d, want 27", c.Remaining())
	}
}

func TestNewControllerRejectsBadSize(t *testing.T) {
	if _, err := NewController(0, SequentialIdentities("t")); err == nil {
		t.Error("NewController(0) should fail")
	}
}

func TestNewControllerRejectsNilIdentities(t *testing.T) {
	if _, err := NewController(3, nil); !errors.Is(err, ErrNoIdentities) {
		t.Errorf("NewController(3, nil) error = %v, want ErrNoIdentities", err)
	}
}

func TestControllerSelectCancel(t *testing.T) {
	c := newTestController(t, 3)

	s := c.Select(C(1, 1, 1))
	if s.Phase != PhaseAwaitingConfirmation {
		t.Fatalf("Phase = %v, want AwaitingConfirmation", s.Phase)
	}
	if s.PendingSelection == nil || *s.PendingSelection != C(1, 1, 1) {
		t.Fatalf("PendingSelection = %v, want (1,1,1)", s.PendingSelection)
	}

	s = c.Cancel()
	if s.Phase != PhaseAwaitingSelection || s.PendingSelection != nil {
		t.Errorf("after cancel state = %+v", s)
	}
	if !c.Grid().Equal(newTestController(t, 3).Grid()) {
		t.Error("cancel must not touch the grid")
	}
}

func TestControllerInvalidTransitionsAreNoOps(t *testing.T) {
	c := newTestController(t, 3)
	before := c.State()

	// Confirm and cancel while awaiting selection.
	c.Confirm()
	c.Cancel()
	// Selecting outside the cube.
	c.Select(C(9, 9, 9))

	after := c.State()
	if after.Phase != before.Phase || after.ActivePlayer != before.ActivePlayer {
		t.Errorf("state changed: before %+v after %+v", before, after)
	}
	if after.PendingSelection != nil {
		t.Error("no selection expected")
	}

	// Second select while awaiting confirmation keeps the first.
	c.Select(C(0, 0, 0))
	s := c.Select(C(2, 2, 2))
	if *s.PendingSelection != C(0, 0, 0) {
		t.Errorf("PendingSelection = %v, want (0,0,0)", *s.PendingSelection)
	}
}

func TestControllerSelectEmptyCellIsNoOp(t *testing.T) {
	c := newTestController(t, 2)
	c.Select(C(0, 0, 0))
	c.Confirm() // removes (0,0,0)

	s := c.Select(C(0, 0, 0))
	if s.Phase != PhaseAwaitingSelection || s.PendingSelection != nil {
		t.Errorf("selecting an empty cell changed state: %+v", s)
	}
}

func TestControllerConfirmCreditsAndSwitches(t *testing.T) {
	c := newTestController(t, 2)
	c.Select(C(0, 0, 0))
	s := c.Confirm()

	if s.Phase != PhaseAwaitingSelection {
		t.Errorf("Phase = %v, want AwaitingSelection", s.Phase)
	}
	if s.ActivePlayer != Player2 {
		t.Errorf("ActivePlayer = %v, want Player2", s.ActivePlayer)
	}
	if got := s.Scores[Player1]; len(got) != 1 || got[0] != "t1" {
		t.Errorf("Player1 score = %v, want [t1]", got)
	}
	if s.Count(Player2) != 0 {
		t.Error("Player2 should have nothing yet")
	}
	if p1, p2 := c.Counts(); p1 != 1 || p2 != 0 {
		t.Errorf("Counts() = %d, %d, want 1, 0", p1, p2)
	}
	if c.Cell(C(0, 0, 0)).Occupied {
		t.Error("converted corner should be gone")
	}

	last := c.LastTurn()
	if last == nil || last.Player != Player1 || last.Flipped != C(0, 0, 0) {
		t.Fatalf("LastTurn = %+v", last)
	}
	if len(last.Cascade.Removed) != 1 {
		t.Errorf("LastTurn removed %d cells, want 1", len(last.Cascade.Removed))
	}
}

func TestControllerConfirmWithoutRemoval(t *testing.T) {
	c := newTestController(t, 3)
	c.grid = gridWith(t, 3, map[Coord]Affiliation{
		C(0, 0, 0): AffiliationA,
		C(1, 0, 0): AffiliationA,
		C(2, 0, 0): AffiliationB,
	})

	c.Select(C(0, 0, 0))
	s := c.Confirm()

	if s.ActivePlayer != Player2 {
		t.Error("turn should pass even when nothing is removed")
	}
	if s.Count(Player1) != 0 {
		t.Errorf("Player1 collected %v, want nothing", s.Scores[Player1])
	}
	if got := c.Cell(C(0, 0, 0)); !got.Occupied || got.Affiliation != AffiliationB {
		t.Errorf("converted cell = %+v, want occupied B", got)
	}
	if c.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", c.Remaining())
	}
}

func TestControllerUnitGridTerminates(t *testing.T) {
	var seen []TurnState
	c, err := NewController(1, SequentialIdentities("u"), WithObserver(func(s TurnState) {
		seen = append(seen, s)
	}))
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	c.Select(C(0, 0, 0))
	s := c.Confirm()
	if !s.Terminal || s.Phase != PhaseTerminal {
		t.Fatalf("expected terminal state, got %+v", s)
	}
	winner, ok := c.Winner()
	if !ok || winner != Player1 {
		t.Errorf("Winner = %v, %v; want Player1", winner, ok)
	}
	if len(seen) != 2 {
		t.Errorf("observer called %d times, want 2", len(seen))
	}

	// Nothing but restart works once terminal.
	c.Select(C(0, 0, 0))
	if c.State().Phase != PhaseTerminal {
		t.Error("select should be ignored after the end")
	}
}

func TestControllerRestart(t *testing.T) {
	c := newTestController(t, 2)
	c.Select(C(0, 0, 0))
	c.Confirm()
	c.Select(C(1, 1, 1))

	s := c.Restart()
	if s.Phase != PhaseAwaitingSelection || s.ActivePlayer != Player1 {
		t.Errorf("after restart state = %+v", s)
	}
	if s.PendingSelection != nil || s.Count(Player1) != 0 || s.Count(Player2) != 0 {
		t.Errorf("restart should clear selection and scores: %+v", s)
	}
	if c.Remaining() != 8 {
		t.Errorf("Remaining = %d, want 8", c.Remaining())
	}
	if c.LastTurn() != nil {
		t.Error("LastTurn should be cleared")
	}
	// Fresh identities come from the source.
	if got := c.Cell(C(0, 0, 0)).Identity; got != "t9" {
		t.Errorf("identity after restart = %q, want t9", got)
	}
}

func TestControllerStateIsACopy(t *testing.T) {
	c := newTestController(t, 2)
	c.Select(C(0, 0, 0))
	c.Confirm()

	s := c.State()
	s.Scores[Player1][0] = "tampered"

	if c.State().Scores[Player1][0] != "t1" {
		t.Error("mutating a snapshot leaked into the controller")
	}

	g := c.Grid()
	g.Clear(C(1, 1, 1))
	if !c.Cell(C(1, 1, 1)).Occupied {
		t.Error("mutating Grid() leaked into the controller")
	}

	last := c.LastTurn()
	last.Cascade.Grid.Clear(C(1, 0, 0))
	if !c.Cell(C(1, 0, 0)).Occupied {
		t.Error("mutating LastTurn grid leaked into the controller")
	}
}

func TestControllerWinnerTie(t *testing.T) {
	c := newTestController(t, 2)
	c.scores[Player1] = []Identity{"a"}
	c.scores[Player2] = []Identity{"b"}
	c.phase = PhaseTerminal

	if _, ok := c.Winner(); ok {
		t.Error("equal counts should be a tie")
	}
}
