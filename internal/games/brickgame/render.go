package brickgame

import (
	"fmt"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Layout in screen characters. Each board cell is two characters wide so
// cells look square in a terminal.
const (
	cellW       = 2
	hudHeight   = 2
	boardBoxW   = Cols*cellW + 2
	boardBoxH   = Rows + 2
	panelGap    = 2
	panelW      = 12
	previewRows = 2

	layoutWidth  = boardBoxW + panelGap + panelW
	layoutHeight = hudHeight + boardBoxH
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

// tileColors maps tile colors to screen colors.
var tileColors = [...]core.Color{
	TileLightBlue: core.ColorBrightCyan,
	TileYellow:    core.ColorBrightYellow,
	TilePink:      core.ColorPink,
	TileBlue:      core.ColorBrightBlue,
	TileOrange:    core.ColorOrange,
	TileGreen:     core.ColorBrightGreen,
	TileRed:       core.ColorBrightRed,
}

// ScreenColor returns the screen color used for a tile.
func (c TileColor) ScreenColor() core.Color {
	if int(c) >= len(tileColors) {
		return core.ColorDefault
	}
	return tileColors[c]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", layoutWidth, layoutHeight))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).
		CenteredIn(layoutWidth, boardBoxH)
	box := core.NewRect(area.X, area.Y, boardBoxW, boardBoxH)

	dst.DrawBox(box, core.ColorGray)
	g.renderBoard(dst, box.X+1, box.Y+1)
	g.renderPanel(dst, box.Right()+panelGap, box.Y)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - R to restart", g.engine.Score()))
	case g.engine.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s - Score: %d  Lines: %d  Gravity: %dms",
		g.Title(), g.engine.Score(), g.engine.Lines(), g.engine.Interval().Milliseconds())
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws locked cells, the ghost and the falling piece with the
// board's top-left cell at (ox, oy).
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for row := range Rows {
		for col := range Cols {
			if color, ok := g.engine.ColorAt(row, col); ok {
				drawCell(dst, ox, oy, col, row, blockChar, color.ScreenColor())
			} else {
				dst.SetColored(ox+col*cellW+1, oy+row, emptyChar, core.ColorDarkGray)
			}
		}
	}

	if g.engine.GameOver() {
		return
	}

	piece, px, py := g.engine.Falling()
	_, gy := g.engine.Ghost()
	if gy != py {
		drawShape(dst, ox, oy, piece.Shape, px, gy, ghostChar, core.ColorGray)
	}
	drawShape(dst, ox, oy, piece.Shape, px, py, blockChar, piece.Color().ScreenColor())
}

// renderPanel draws the queue preview and stats to the right of the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "NEXT", core.ColorBrightWhite)
	row := y + 1
	for _, t := range g.engine.Upcoming() {
		drawPreview(dst, x, row, t)
		row += previewRows + 1
	}

	row++
	dst.DrawTextColored(x, row, "SCORE", core.ColorBrightWhite)
	dst.DrawText(x, row+1, fmt.Sprintf("%d", g.engine.Score()))
	dst.DrawTextColored(x, row+3, "LINES", core.ColorBrightWhite)
	dst.DrawText(x, row+4, fmt.Sprintf("%d", g.engine.Lines()))
}

// drawPreview draws the occupied rows of a piece's spawn shape.
func drawPreview(dst *core.Screen, x, y int, t PieceType) {
	shape := ShapeOf(t, 0)
	first := 0
	for first < len(shape)-1 && shape[first] == 0 {
		first++
	}
	color := t.Color().ScreenColor()
	for i := 0; i < previewRows && first+i < len(shape); i++ {
		r := shape[first+i]
		for col := range len(shape) {
			if r.Has(col) {
				dst.SetColored(x+col*cellW, y+i, blockChar, color)
				dst.SetColored(x+col*cellW+1, y+i, blockChar, color)
			}
		}
	}
}

// drawShape draws every occupied cell of shape placed at board (px, py).
func drawShape(dst *core.Screen, ox, oy int, shape Shape, px, py int, ch rune, color core.Color) {
	for i, r := range shape {
		for col := range len(shape) {
			if !r.Has(col) {
				continue
			}
			bx, by := px+col, py+i
			if bx < 0 || bx >= Cols || by < 0 || by >= Rows {
				continue
			}
			drawCell(dst, ox, oy, bx, by, ch, color)
		}
	}
}

// drawCell fills one two-character board cell.
func drawCell(dst *core.Screen, ox, oy, col, row int, ch rune, color core.Color) {
	x := ox + col*cellW
	dst.SetColored(x, oy+row, ch, color)
	dst.SetColored(x+1, oy+row, ch, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).CenteredIn(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	drawCentered(dst, line1, box.Y+1)
	drawCentered(dst, line2, box.Y+3)
}

// drawCentered draws text centered horizontally.
func drawCentered(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}
