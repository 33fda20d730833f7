package townsfolk

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/townsfolk/internal/core"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
)

const (
	layerGap     = 3 // Columns between two layers
	hudHeight    = 3
	footerHeight = 3
	minWidth     = 40
)

// Glyphs
const (
	glyphA        = '●'
	glyphB        = '◆'
	glyphEmpty    = '·'
	glyphRemoving = '░'
)

// layout places the N layers of the cube side by side, wrapping to more
// rows of layers when the terminal is too narrow.
type layout struct {
	n       int
	cellW   int
	layerW  int
	perRow  int
	originX int
	originY int
	bottom  int // First row below the board
}

func (g *Game) layout() layout {
	n := g.ctrl.Size()
	cw := g.cfg.Board.CellWidth
	l := layout{n: n, cellW: cw, layerW: n * cw, originY: hudHeight}

	l.perRow = core.Clamp((g.screenW+layerGap)/(l.layerW+layerGap), 1, n)
	rows := (n + l.perRow - 1) / l.perRow
	totalW := l.perRow*l.layerW + (l.perRow-1)*layerGap
	l.originX = core.Max(0, (g.screenW-totalW)/2)
	l.bottom = l.originY + rows*(n+2)
	return l
}

// cellPos returns the screen column of the cell's glyph and its row.
func (l layout) cellPos(c engine.Coord) (x, y int) {
	bx := l.originX + (c.Z%l.perRow)*(l.layerW+layerGap)
	by := l.originY + (c.Z/l.perRow)*(l.n+2)
	return bx + c.X*l.cellW + l.cellW/2, by + 1 + (l.n - 1 - c.Y)
}

// checkScreenSize checks if the screen can hold one layer per row plus
// the HUD and footer.
func (g *Game) checkScreenSize() {
	if g.ctrl == nil {
		return
	}
	n := g.ctrl.Size()
	minW := core.Max(minWidth, n*g.cfg.Board.CellWidth+2)
	g.tooSmall = g.screenW < minW
	if !g.tooSmall {
		g.tooSmall = g.screenH < g.layout().bottom+footerHeight
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	grid := g.displayGrid()

	g.renderHUD(dst)
	g.renderLayers(dst, l, grid)
	g.renderFooter(dst, l.bottom, grid)
	if g.showScores {
		g.renderScores(dst, l.bottom+footerHeight+1)
	}
	g.renderOverlays(dst)
}

// displayGrid is the grid being shown: the fading copy during the removal
// transition, the live grid otherwise.
func (g *Game) displayGrid() *engine.Grid {
	if g.fading != nil {
		return g.fading
	}
	return g.ctrl.Grid()
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.ctrl.State()
	n := g.ctrl.Size()

	dst.DrawTextCentered(0, fmt.Sprintf("TOWNSFOLK  %d×%d×%d", n, n, n))

	turn := "Turn: " + g.playerName(st.ActivePlayer)
	if st.Terminal {
		turn = "Game over"
	}
	dst.DrawTextColored(1, 1, turn, playerColor(st.ActivePlayer))

	left := fmt.Sprintf("In town: %d/%d", g.ctrl.Remaining(), n*n*n)
	dst.DrawText(g.screenW-utf8.RuneCountInString(left)-1, 1, left)

	p1 := fmt.Sprintf("%s: %d", g.playerName(engine.Player1), st.Count(engine.Player1))
	p2 := fmt.Sprintf("%s: %d", g.playerName(engine.Player2), st.Count(engine.Player2))
	dst.DrawTextColored(1, 2, p1, playerColor(engine.Player1))
	dst.DrawTextColored(g.screenW-utf8.RuneCountInString(p2)-1, 2, p2, playerColor(engine.Player2))
}

func (g *Game) renderLayers(dst *core.Screen, l layout, grid *engine.Grid) {
	for z := range l.n {
		x, y := l.cellPos(engine.C(0, l.n-1, z))
		label := fmt.Sprintf("Layer %d", z+1)
		color := core.ColorGray
		if z == g.cursor.Z {
			color = core.ColorWhite
		}
		dst.DrawTextColored(x-l.cellW/2, y-1, label, color)
	}

	for _, c := range grid.Coords() {
		x, y := l.cellPos(c)
		r, color := cellGlyph(grid.Get(c))
		dst.SetColored(x, y, r, color)
	}

	st := g.ctrl.State()
	if st.PendingSelection != nil {
		if g.cfg.Display.HighlightNeighbors {
			for _, nb := range engine.Neighbors(grid, *st.PendingSelection) {
				g.bracket(dst, l, nb, '(', ')', core.ColorCyan)
			}
		}
		g.bracket(dst, l, *st.PendingSelection, '<', '>', core.ColorBrightYellow)
		return
	}
	if g.fading == nil && !st.Terminal {
		g.bracket(dst, l, g.cursor, '[', ']', core.ColorYellow)
	}
}

func (g *Game) bracket(dst *core.Screen, l layout, c engine.Coord, openR, closeR rune, color core.Color) {
	x, y := l.cellPos(c)
	dst.SetColored(x-1, y, openR, color)
	dst.SetColored(x+1, y, closeR, color)
}

func cellGlyph(c engine.Cell) (rune, core.Color) {
	switch {
	case !c.Occupied:
		return glyphEmpty, core.ColorGray
	case c.Removing:
		return glyphRemoving, core.ColorDim
	case c.Affiliation == engine.AffiliationA:
		return glyphA, core.ColorBrightBlue
	default:
		return glyphB, core.ColorBrightRed
	}
}

func playerColor(p engine.Player) core.Color {
	if p == engine.Player2 {
		return core.ColorMagenta
	}
	return core.ColorGreen
}

// renderFooter shows the townsperson under the cursor, the status line and
// the key hints.
func (g *Game) renderFooter(dst *core.Screen, y int, grid *engine.Grid) {
	at := g.cursor
	if p := g.ctrl.State().PendingSelection; p != nil {
		at = *p
	}
	cell := grid.Get(at)
	info := fmt.Sprintf("%s  nobody", at)
	if cell.Occupied {
		info = fmt.Sprintf("%s  %s  faction %s", at, cell.Identity, cell.Affiliation)
	}
	dst.DrawText(1, y, info)

	statusColor := core.ColorDefault
	if g.ctrl.State().Phase == engine.PhaseAwaitingConfirmation {
		statusColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(1, y+1, g.status, statusColor)

	hint := g.Controls()
	if g.ctrl.State().Phase == engine.PhaseAwaitingConfirmation {
		hint = "Enter confirm  Esc cancel"
	}
	dst.DrawTextColored(1, y+2, hint, core.ColorGray)
}

// renderScores lists each player's collected townsfolk, newest first, in
// two columns.
func (g *Game) renderScores(dst *core.Screen, y int) {
	rows := g.screenH - y - 1
	if rows < 2 {
		return
	}
	colW := g.screenW / 2
	for i, t := range g.Tallies() {
		x := 1 + i*colW
		p := engine.Player(i + 1)
		dst.DrawTextColored(x, y, fmt.Sprintf("%s (%d)", t.Player, len(t.Items)), playerColor(p))
		shown := 0
		for j := len(t.Items) - 1; j >= 0 && shown < rows-1; j-- {
			dst.DrawText(x+2, y+1+shown, truncate(t.Items[j], colW-3))
			shown++
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen) {
	if !g.ctrl.State().Terminal {
		return
	}
	st := g.ctrl.State()
	counts := fmt.Sprintf("%s: %d   %s: %d",
		g.playerName(engine.Player1), st.Count(engine.Player1),
		g.playerName(engine.Player2), st.Count(engine.Player2))

	result := "It's a tie!"
	if w, ok := g.ctrl.Winner(); ok {
		result = g.playerName(w) + " wins!"
	}
	g.drawOverlay(dst, g.screenW/2, g.screenH/2, "GAME OVER", counts, result, "Press R to restart")
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorYellow)
	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= w {
		return s
	}
	r := []rune(s)
	return string(r[:w-1]) + "…"
}
