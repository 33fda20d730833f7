// Package townsfolk implements the Townsfolk cube game for the platform.
// Two players take turns converting townsfolk on an N×N×N cube; whoever
// sets off a conversion collects everyone it drives out of town.
package townsfolk

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/townsfolk/internal/config"
	"github.com/vovakirdan/townsfolk/internal/core"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/names"
	"github.com/vovakirdan/townsfolk/internal/registry"
)

// Errors returned by Apply.
var (
	ErrGameOver    = errors.New("the game is over")
	ErrNobodyThere = errors.New("nobody lives there")
	ErrBusy        = errors.New("a selection is already pending")
)

// Variant describes one registered cube size. Size 0 takes the size from
// the config file.
type Variant struct {
	ID    string
	Title string
	Size  int
}

// Variants lists every cube the registry offers.
var Variants = []Variant{
	{ID: "cube", Title: "Townsfolk Cube", Size: 0},
	{ID: "cube2", Title: "Townsfolk Cube 2×2×2", Size: 2},
	{ID: "cube4", Title: "Townsfolk Cube 4×4×4", Size: 4},
	{ID: "cube5", Title: "Townsfolk Cube 5×5×5", Size: 5},
}

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// sizeOverride replaces the configured board size for the "cube" variant
	sizeOverride int

	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardSize overrides the configured cube size. 0 restores the config value.
func SetBoardSize(n int) {
	sizeOverride = n
}

// SetLogger sets the logger used for turn reports.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game adapts the engine controller to the platform: cursor navigation,
// the removal transition and presentation state live here.
type Game struct {
	variant Variant
	cfg     config.TownsfolkConfig
	pinned  bool // cfg was set by UseConfig and is not reloaded

	ctrl  *engine.Controller
	names *names.Generator

	cursor     engine.Coord
	showScores bool
	status     string
	turns      int

	// Removal transition: a copy of the grid with the latest removals
	// still in place, flagged Removing.
	fading    *engine.Grid
	fadeTicks int

	tick     uint64
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// UseConfig pins the configuration instead of loading it on Reset.
func (g *Game) UseConfig(cfg config.TownsfolkConfig) {
	g.cfg = cfg
	g.pinned = true
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Controls returns the key hints shown in the footer and the menu.
func (g *Game) Controls() string {
	return "←↑↓→ move  E/Z layer  Enter select  Esc cancel  Tab scores  R restart"
}

// Size returns the cube edge length of the current match.
func (g *Game) Size() int {
	if g.ctrl == nil {
		return g.boardSize()
	}
	return g.ctrl.Size()
}

func (g *Game) boardSize() int {
	switch {
	case g.variant.Size > 0:
		return g.variant.Size
	case sizeOverride > 0:
		return sizeOverride
	default:
		return g.cfg.Board.Size
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadTownsfolk(configPath)
		if err != nil {
			logger.Warn("falling back to default config", "err", err)
		}
		g.cfg = cfg
	}

	g.names = names.New(rc.Seed, g.cfg.Names.First, g.cfg.Names.Last)
	ctrl, err := engine.NewController(g.boardSize(), g.names, engine.WithObserver(g.observe))
	if err != nil {
		n := config.DefaultTownsfolkConfig().Board.Size
		logger.Error("invalid board size, using default", "size", g.boardSize(), "default", n, "err", err)
		ctrl, _ = engine.NewController(n, g.names, engine.WithObserver(g.observe))
	}
	g.ctrl = ctrl

	g.tick = 0
	g.turns = 0
	g.cursor = engine.C(0, 0, 0)
	g.showScores = g.cfg.Display.ShowScoreboard
	g.fading = nil
	g.fadeTicks = 0
	g.status = fmt.Sprintf("%s, pick someone to convert.", g.playerName(engine.Player1))
	g.Resize(rc.ScreenW, rc.ScreenH)

	logger.Info("new match", "variant", g.variant.ID, "size", g.ctrl.Size(), "seed", rc.Seed)
}

// Resize adapts the layout to a new terminal size without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionToggleScores) {
		g.showScores = !g.showScores
	}
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Input waits while removed townsfolk fade out
	if g.fadeTicks > 0 {
		g.fadeTicks--
		if g.fadeTicks == 0 {
			g.fading = nil
		}
		return core.StepResult{State: g.State()}
	}

	state := g.ctrl.State()
	switch state.Phase {
	case engine.PhaseAwaitingSelection:
		g.navigate(in)
		if in.Has(core.ActionConfirm) {
			g.selectAtCursor()
		} else if in.Has(core.ActionBack) {
			logger.Debug("cancel ignored: nothing selected")
		}
	case engine.PhaseAwaitingConfirmation:
		switch {
		case in.Has(core.ActionConfirm):
			g.confirm()
		case in.Has(core.ActionBack):
			g.ctrl.Cancel()
			g.status = "Selection cancelled."
		}
	}

	return core.StepResult{State: g.State()}
}

// navigate moves the cursor; every axis wraps around.
func (g *Game) navigate(in core.InputFrame) {
	n := g.ctrl.Size()
	c := g.cursor
	switch {
	case in.Has(core.ActionLeft):
		c.X--
	case in.Has(core.ActionRight):
		c.X++
	case in.Has(core.ActionUp):
		c.Y++
	case in.Has(core.ActionDown):
		c.Y--
	case in.Has(core.ActionLayerUp):
		c.Z++
	case in.Has(core.ActionLayerDown):
		c.Z--
	default:
		return
	}
	g.cursor = engine.C(core.Wrap(c.X, n), core.Wrap(c.Y, n), core.Wrap(c.Z, n))
}

func (g *Game) selectAtCursor() {
	st := g.ctrl.Select(g.cursor)
	if st.Phase != engine.PhaseAwaitingConfirmation {
		logger.Debug("select ignored: empty cell", "at", g.cursor)
		g.status = fmt.Sprintf("Nobody lives at %s.", g.cursor)
		return
	}
	cell := g.ctrl.Cell(g.cursor)
	g.status = fmt.Sprintf("%s converts %s?", g.playerName(st.ActivePlayer), cell.Identity)
}

func (g *Game) confirm() {
	st := g.ctrl.Confirm()
	turn := g.ctrl.LastTurn()
	if turn == nil {
		return
	}
	g.turns++
	removed := len(turn.Cascade.Removed)

	logger.Info("turn",
		"player", turn.Player,
		"at", turn.Flipped,
		"removed", removed,
		"passes", turn.Cascade.Passes,
		"remaining", g.ctrl.Remaining(),
	)

	who := g.playerName(turn.Player)
	switch removed {
	case 0:
		g.status = fmt.Sprintf("%s converted %s. Nobody left town.", who, g.ctrl.Cell(turn.Flipped).Identity)
	case 1:
		g.status = fmt.Sprintf("%s collected %s.", who, turn.Cascade.Removed[0].Identity)
	default:
		g.status = fmt.Sprintf("%s collected %d townsfolk.", who, removed)
	}

	if removed > 0 && g.cfg.Transition.RemovalTicks > 0 {
		g.startFade(turn)
	}

	if st.Terminal {
		winner, ok := g.ctrl.Winner()
		if ok {
			logger.Info("game over", "winner", winner, "turns", g.turns)
		} else {
			logger.Info("game over", "winner", "tie", "turns", g.turns)
		}
	}
}

// startFade puts the removed townsfolk back on a display copy of the grid,
// flagged Removing, for the length of the transition.
func (g *Game) startFade(turn *engine.TurnResult) {
	display := turn.Cascade.Grid
	for _, r := range turn.Cascade.Removed {
		display.Set(r.Coord, engine.Occupant(r.Affiliation, r.Identity).MarkedRemoving())
	}
	g.fading = display
	g.fadeTicks = g.cfg.Transition.RemovalTicks
}

func (g *Game) restart() {
	g.ctrl.Restart()
	g.turns = 0
	g.fading = nil
	g.fadeTicks = 0
	g.status = "New town. " + g.playerName(engine.Player1) + " starts."
	logger.Info("restart", "variant", g.variant.ID)
}

// observe receives every controller state change.
func (g *Game) observe(s engine.TurnState) {
	logger.Debug("state", "phase", s.Phase, "active", s.ActivePlayer,
		"p1", s.Count(engine.Player1), "p2", s.Count(engine.Player2))
}

// Apply selects and confirms at once, skipping the cursor and the removal
// transition. Used for scripted play.
func (g *Game) Apply(at engine.Coord) (*engine.TurnResult, error) {
	st := g.ctrl.State()
	switch {
	case st.Terminal:
		return nil, ErrGameOver
	case st.Phase != engine.PhaseAwaitingSelection:
		return nil, ErrBusy
	}
	if st = g.ctrl.Select(at); st.Phase != engine.PhaseAwaitingConfirmation {
		return nil, fmt.Errorf("%w: %s", ErrNobodyThere, at)
	}
	g.cursor = at
	g.confirm()
	g.fading = nil
	g.fadeTicks = 0
	return g.ctrl.LastTurn(), nil
}

// Winner reports the winner once the game is over; ok is false before
// the end and on a tie.
func (g *Game) Winner() (engine.Player, bool) {
	return g.ctrl.Winner()
}

// Tallies returns each player's collected townsfolk in collection order.
func (g *Game) Tallies() []registry.Tally {
	st := g.ctrl.State()
	out := make([]registry.Tally, 0, 2)
	for _, p := range []engine.Player{engine.Player1, engine.Player2} {
		items := make([]string, len(st.Scores[p]))
		for i, id := range st.Scores[p] {
			items[i] = string(id)
		}
		out = append(out, registry.Tally{Player: g.playerName(p), Items: items})
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.ctrl.State()
	return core.GameState{
		Score:    max(st.Count(engine.Player1), st.Count(engine.Player2)),
		GameOver: st.Terminal,
		Busy:     g.fadeTicks > 0 || g.tooSmall,
		Status:   g.status,
	}
}

func (g *Game) playerName(p engine.Player) string {
	return g.cfg.PlayerName(int(p))
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
	_ registry.TallyProvider = (*Game)(nil)
)
