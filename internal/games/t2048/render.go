package t2048

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/engine"
)

const (
	hudHeight    = 3
	footerHeight = 2 // blank line plus hint
	minContentW  = 28
)

// layout is the geometry of one way to draw the board.
type layout struct {
	cellW  int // inner width of a cell
	cellH  int // inner height of a cell
	boardW int
	boardH int
}

var layouts = []struct{ cellW, cellH int }{
	{7, 3}, // roomy
	{6, 1}, // compact
}

func newLayout(size, cellW, cellH int) layout {
	return layout{
		cellW:  cellW,
		cellH:  cellH,
		boardW: size*(cellW+1) + 1,
		boardH: size*(cellH+1) + 1,
	}
}

func (l layout) contentW() int {
	return max(l.boardW, minContentW)
}

func (l layout) contentH() int {
	return hudHeight + 1 + l.boardH + footerHeight
}

// pickLayout returns the largest layout that fits a w x h screen.
func pickLayout(size, w, h int) (layout, bool) {
	for _, c := range layouts {
		l := newLayout(size, c.cellW, c.cellH)
		if l.contentW() <= w && l.contentH() <= h {
			return l, true
		}
	}
	return newLayout(size, layouts[len(layouts)-1].cellW, layouts[len(layouts)-1].cellH), false
}

// MinScreenSize returns the smallest screen that can show a size x size
// board.
func MinScreenSize(size int) (w, h int) {
	c := layouts[len(layouts)-1]
	l := newLayout(size, c.cellW, c.cellH)
	return l.contentW(), l.contentH()
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout
	content := core.CenteredRect(l.contentW(), l.contentH(), dst.Width(), dst.Height())
	board := core.NewRect(content.X+(content.W-l.boardW)/2, content.Y+hudHeight+1, l.boardW, l.boardH)

	g.renderHUD(dst, content)
	g.renderBoard(dst, board)
	g.renderFooter(dst, content, board.Bottom()+1)
	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := MinScreenSize(g.session.Engine().Config().Size)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()), core.ColorMuted)
}

// renderHUD draws the title, score and clock above the board.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	eng := g.session.Engine()
	sum := g.session.Summary()

	dst.DrawTextIn(area, area.Y, g.Title(), core.ColorAccent, true)

	score := "Score " + strconv.Itoa(eng.Score())
	if g.last.ScoreDelta > 0 {
		score += fmt.Sprintf(" +%d", g.last.ScoreDelta)
	}
	dst.DrawText(area.X, area.Y+1, score, core.ColorText)
	drawRight(dst, area, area.Y+1, "Best "+strconv.Itoa(sum.BestScore), core.ColorText)

	dst.DrawText(area.X, area.Y+2, "Moves "+strconv.Itoa(sum.MovesMade), core.ColorMuted)
	clock := "Time " + FormatDuration(sum.GameElapsed)
	if g.session.Paused() {
		clock = "Paused " + FormatDuration(sum.GameElapsed)
	}
	drawRight(dst, area, area.Y+2, clock, core.ColorMuted)
}

func drawRight(dst *core.Screen, area core.Rect, y int, text string, c core.Color) {
	dst.DrawText(area.Right()-len(text), y, text, c)
}

// renderBoard draws the grid and the tiles.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	board := g.session.Engine().Board()
	size := board.Size()
	l := g.layout
	stepX, stepY := l.cellW+1, l.cellH+1

	for gy := range size + 1 {
		for gx := range size + 1 {
			px := r.X + gx*stepX
			py := r.Y + gy*stepY
			dst.SetCell(px, py, core.Cell{Rune: gridJoint(gx, gy, size), Color: core.ColorGrid})

			if gx < size {
				for i := 1; i < stepX; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorGrid})
				}
			}
			if gy < size {
				for i := 1; i < stepY; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorGrid})
				}
			}
		}
	}

	merged := make(map[engine.Coord]bool, len(g.last.Merged))
	for _, c := range g.last.Merged {
		merged[c] = true
	}

	for row := range size {
		for col := range size {
			cell := core.NewRect(r.X+col*stepX+1, r.Y+row*stepY+1, l.cellW, l.cellH)
			at := engine.Coord{Row: row, Col: col}
			g.renderTile(dst, cell, board.At(at), merged[at], g.isSpawned(at))
		}
	}
}

func (g *Game) isSpawned(at engine.Coord) bool {
	return g.last.Spawned != nil && g.last.Spawned.Coord == at
}

func (g *Game) renderTile(dst *core.Screen, cell core.Rect, value int, merged, spawned bool) {
	color := core.TileColor(value)
	dst.FillRect(cell, core.Cell{Rune: ' ', Color: color})

	mid := cell.Y + cell.H/2
	if value == 0 {
		dst.DrawTextIn(cell, mid, "·", core.ColorEmpty, false)
		return
	}

	dst.DrawTextIn(cell, mid, strconv.Itoa(value), color, merged)
	if spawned && cell.H > 1 {
		dst.SetCell(cell.X, cell.Y, core.Cell{Rune: '+', Color: color, Bold: true})
	}
}

// gridJoint picks the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderFooter(dst *core.Screen, area core.Rect, y int) {
	dst.DrawTextIn(area, y+1, "arrows move · z undo · h help", core.ColorMuted, false)
}

// renderOverlays draws the pause, win and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	eng := g.session.Engine()

	switch {
	case g.session.Paused():
		drawOverlay(dst, board, core.ColorWarning, "PAUSED", "Press P to resume")
	case eng.Over():
		drawOverlay(dst, board, core.ColorLose,
			"GAME OVER",
			fmt.Sprintf("Score %d · Max %d", eng.Score(), eng.MaxTile()),
			"Z undo · R new game")
	case g.showWin:
		drawOverlay(dst, board, core.ColorWin,
			"YOU WIN!",
			fmt.Sprintf("%d reached", eng.Config().WinTile),
			"Keep going")
	}
}

// drawOverlay draws a framed box of lines centred on area.
func drawOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.CenteredRect(maxLen+4, len(lines)+2, area.W, area.H)
	box.X += area.X
	box.Y += area.Y

	dst.FillRect(box, core.Cell{Rune: ' ', Color: c})
	dst.DrawBox(box, c)
	for i, line := range lines {
		dst.DrawTextIn(box, box.Y+1+i, line, c, i == 0)
	}
}

// FormatDuration renders a play time as m:ss or h:mm:ss.
func FormatDuration(d time.Duration) string {
	total := int(max(d, 0) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
