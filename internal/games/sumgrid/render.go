package sumgrid

import (
	"fmt"

	"github.com/WangLucas2013/Sum-Game/internal/config"
	"github.com/WangLucas2013/Sum-Game/internal/core"
)

// Board layout constants.
const (
	cellWidth = 4 // Horizontal characters per grid cell
	hudHeight = 2 // HUD line plus separator
)

// Render draws the HUD, the board, and any overlay into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d", g.Title(), g.score)
	dst.DrawText(0, 0, hud)
	x := len(hud)

	targetStr := fmt.Sprintf("  Target: %d", g.target)
	dst.DrawTextColored(x, 0, targetStr, config.ParseColor(g.display.Theme.Target))
	x += len(targetStr)

	if g.display.HUD.ShowSum {
		sumColor := core.ColorDefault
		if g.currentSum > g.target {
			sumColor = core.ColorBrightRed
		}
		sumStr := fmt.Sprintf("  Sum: %d", g.currentSum)
		dst.DrawTextColored(x, 0, sumStr, sumColor)
		x += len(sumStr)
	}

	if g.mode == ModeTimed && g.display.HUD.ShowTimer {
		dst.DrawText(x, 0, fmt.Sprintf("  Next row: %ds", g.timeLeft))
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the grid frame, the blocks, and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	boardW := GridCols*cellWidth + 2
	boardH := GridRows + 2
	boxX := (dst.Width() - boardW) / 2
	boxY := hudHeight + 1

	dst.DrawBox(core.NewRect(boxX, boxY, boardW, boardH))

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			g.renderCell(dst, boxX, boxY, row, col)
		}
	}

	hint := "Arrows: move  Space: pick  P: pause  Q: quit"
	dst.DrawTextCentered(boxY+boardH, hint)
}

// renderCell draws one grid cell: the block value (if any), selection
// brackets, and the cursor markers.
func (g *Game) renderCell(dst *core.Screen, boxX, boxY, row, col int) {
	cellX := boxX + 1 + col*cellWidth
	cellY := boxY + 1 + row

	b := g.grid.BlockAt(row, col)
	underCursor := row == g.cursorRow && col == g.cursorCol

	if b != nil {
		color := g.valueColor(b.Value)
		if b.Selected {
			color = config.ParseColor(g.display.Theme.Selected)
			dst.SetColored(cellX, cellY, '[', color)
			dst.SetColored(cellX+2, cellY, ']', color)
		}
		dst.SetColored(cellX+1, cellY, rune('0'+b.Value), color)
	}

	if underCursor {
		cursorColor := config.ParseColor(g.display.Theme.Cursor)
		dst.SetColored(cellX-1, cellY, '▸', cursorColor)
		dst.SetColored(cellX+3, cellY, '◂', cursorColor)
	}
}

// valueColor maps a block value to its theme color band.
func (g *Game) valueColor(value int) core.Color {
	switch {
	case value <= 3:
		return config.ParseColor(g.display.Theme.LowValue)
	case value <= 6:
		return config.ParseColor(g.display.Theme.MidValue)
	default:
		return config.ParseColor(g.display.Theme.HighValue)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
