package engine

// Phase is the controller's position in the turn cycle.
type Phase int

const (
	PhaseAwaitingSelection Phase = iota
	PhaseAwaitingConfirmation
	PhaseResolving // Only observable from inside Confirm
	PhaseTerminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSelection:
		return "AwaitingSelection"
	case PhaseAwaitingConfirmation:
		return "AwaitingConfirmation"
	case PhaseResolving:
		return "Resolving"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// TurnState is a read-only view of the match. Values returned by the
// Controller are copies and may be kept by the caller.
type TurnState struct {
	Phase            Phase
	ActivePlayer     Player
	Scores           map[Player][]Identity // Collected identities in elimination order
	PendingSelection *Coord                // Set while awaiting confirmation
	Terminal         bool
}

// Count returns how many townsfolk p has collected.
func (s TurnState) Count(p Player) int {
	return len(s.Scores[p])
}

// TurnResult describes the last confirmed move.
type TurnResult struct {
	Player  Player
	Flipped Coord
	Cascade Cascade
}

// Observer is notified with the new state after every operation,
// including no-ops.
type Observer func(TurnState)

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// Controller owns the grid and the turn state of one match.
// Every mutation of either goes through its methods.
type Controller struct {
	n        int
	ids      IdentitySource
	observer Observer

	grid    *Grid
	phase   Phase
	active  Player
	scores  map[Player][]Identity
	pending *Coord
	last    *TurnResult
}

// NewController creates a match on an n×n×n cube. ids labels the
// townsfolk, again on every Restart.
func NewController(n int, ids IdentitySource, opts ...Option) (*Controller, error) {
	c := &Controller{n: n, ids: ids}
	for _, opt := range opts {
		opt(c)
	}
	g, err := NewGrid(n, ids)
	if err != nil {
		return nil, err
	}
	c.reset(g)
	return c, nil
}

// reset installs g and a fresh turn state.
func (c *Controller) reset(g *Grid) {
	c.grid = g
	c.phase = PhaseAwaitingSelection
	c.active = Player1
	c.scores = map[Player][]Identity{Player1: {}, Player2: {}}
	c.pending = nil
	c.last = nil
}

// Size returns the edge length of the cube.
func (c *Controller) Size() int {
	return c.n
}

// Select marks the townsperson at coord for conversion. Ignored unless the
// controller is awaiting a selection and coord holds someone.
func (c *Controller) Select(coord Coord) TurnState {
	if c.phase == PhaseAwaitingSelection && c.grid.Get(coord).Live() {
		sel := coord
		c.pending = &sel
		c.phase = PhaseAwaitingConfirmation
	}
	return c.notify()
}

// Cancel drops the pending selection.
func (c *Controller) Cancel() TurnState {
	if c.phase == PhaseAwaitingConfirmation {
		c.pending = nil
		c.phase = PhaseAwaitingSelection
	}
	return c.notify()
}

// Confirm converts the selected townsperson, resolves the cascade, credits
// the active player and passes the turn.
func (c *Controller) Confirm() TurnState {
	if c.phase != PhaseAwaitingConfirmation || c.pending == nil {
		return c.notify()
	}

	c.phase = PhaseResolving
	at := *c.pending
	player := c.active

	next := c.grid.Clone()
	next.Flip(at)
	cascade := Propagate(next)

	c.scores[player] = append(c.scores[player], cascade.Identities()...)
	c.grid = cascade.Grid
	c.pending = nil
	c.active = player.Other()
	c.last = &TurnResult{Player: player, Flipped: at, Cascade: cascade}

	if c.removedTotal() == c.grid.Volume() {
		c.phase = PhaseTerminal
	} else {
		c.phase = PhaseAwaitingSelection
	}
	return c.notify()
}

// Restart throws the current match away and deals a new grid.
func (c *Controller) Restart() TurnState {
	c.reset(startingGrid(c.n, c.ids))
	return c.notify()
}

// State returns a copy of the current turn state.
func (c *Controller) State() TurnState {
	scores := make(map[Player][]Identity, len(c.scores))
	for p, ids := range c.scores {
		scores[p] = append([]Identity(nil), ids...)
	}
	var pending *Coord
	if c.pending != nil {
		sel := *c.pending
		pending = &sel
	}
	return TurnState{
		Phase:            c.phase,
		ActivePlayer:     c.active,
		Scores:           scores,
		PendingSelection: pending,
		Terminal:         c.phase == PhaseTerminal,
	}
}

// Cell returns the cell at coord.
func (c *Controller) Cell(coord Coord) Cell {
	return c.grid.Get(coord)
}

// Grid returns a copy of the live grid.
func (c *Controller) Grid() *Grid {
	return c.grid.Clone()
}

// LastTurn returns the most recent confirmed move, or nil.
func (c *Controller) LastTurn() *TurnResult {
	if c.last == nil {
		return nil
	}
	r := *c.last
	r.Cascade.Grid = r.Cascade.Grid.Clone()
	r.Cascade.Removed = append([]Removal(nil), r.Cascade.Removed...)
	return &r
}

// Remaining returns how many townsfolk are still on the grid.
func (c *Controller) Remaining() int {
	return c.grid.OccupiedCount()
}

// Counts returns how many townsfolk each player has collected.
func (c *Controller) Counts() (p1, p2 int) {
	return len(c.scores[Player1]), len(c.scores[Player2])
}

// Winner returns the player with more collected townsfolk once the match is
// over. ok is false before the end and on a tie.
func (c *Controller) Winner() (winner Player, ok bool) {
	if c.phase != PhaseTerminal {
		return 0, false
	}
	n1, n2 := c.Counts()
	switch {
	case n1 > n2:
		return Player1, true
	case n2 > n1:
		return Player2, true
	default:
		return 0, false
	}
}

func (c *Controller) removedTotal() int {
	return len(c.scores[Player1]) + len(c.scores[Player2])
}

func (c *Controller) notify() TurnState {
	s := c.State()
	if c.observer != nil {
		c.observer(s)
	}
	return s
}
