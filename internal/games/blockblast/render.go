package blockblast

import (
	"strconv"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	blocks "github.com/vovakirdan/tui-blocks/internal/games/blockblast/core"
)

const hudHeight = 4

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderTray(dst)

	drag := g.session.Drag()
	if drag.Phase() == blocks.DragActive {
		g.renderDragGhost(dst, drag)
	} else {
		g.renderCursorPreview(dst)
	}

	switch {
	case g.session.IsGameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title + " | Score: " + strconv.Itoa(g.session.Score()) +
		" | Lines: " + strconv.Itoa(g.lines) +
		" | Pieces: " + strconv.Itoa(g.pieces)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}

	controls := " Drag or ←↑↓→ + Space | 1-3/Tab: Slot | P: Pause | Q: Quit"
	if g.statusMsg != "" && g.tick < g.statusUntil {
		controls = " " + g.statusMsg
	}
	dst.DrawTextColored(0, 2, controls, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 3, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the occupancy grid.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	board := g.session.Board()
	size := board.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			x := g.boardX + col*cellW
			y := g.boardY + row*cellH
			c, err := blocks.NewCoord(row, col, size)
			if err != nil {
				continue
			}
			cell := board.Cell(c)
			if cell.Filled {
				g.renderCell(dst, x, y, '█', blockColorToCore(cell.Color))
			} else {
				g.renderCell(dst, x, y, '·', platformcore.ColorGray)
			}
		}
	}
}

// renderCursorPreview draws the selected block at the keyboard cursor,
// green when the placement is valid and red otherwise.
func (g *Game) renderCursorPreview(dst *platformcore.Screen) {
	block := g.session.Tray().Block(g.selected)
	if block == nil || g.session.IsGameOver() || g.paused {
		return
	}

	color := platformcore.ColorRed
	size := g.session.Board().Size()
	if anchor, err := blocks.NewCoord(g.cursorRow, g.cursorCol, size); err == nil {
		if g.session.Board().CanPlace(block, anchor) {
			color = platformcore.ColorGreen
		}
	}

	for _, off := range block.Offsets() {
		x := g.boardX + (g.cursorCol+off.Col)*cellW
		y := g.boardY + (g.cursorRow+off.Row)*cellH
		g.renderCell(dst, x, y, '▒', color)
	}
}

// renderTray draws the offered blocks under the board.
func (g *Game) renderTray(dst *platformcore.Screen) {
	drag := g.session.Drag()
	for i, block := range g.session.Tray().Slots() {
		x := g.trayX + i*slotW

		label := strconv.Itoa(i + 1)
		if i == g.selected && block != nil {
			dst.DrawTextColored(x, g.trayY+trayRows, "["+label+"]", platformcore.ColorBrightYellow)
		} else {
			dst.DrawTextColored(x+1, g.trayY+trayRows, label, platformcore.ColorGray)
		}

		if block == nil {
			dst.DrawTextColored(x, g.trayY, "···", platformcore.ColorGray)
			continue
		}
		if drag.IsDragging(i) {
			// The dragged block is drawn as a ghost at the pointer instead.
			continue
		}
		g.renderBlock(dst, block, x, g.trayY, blockColorToCore(block.Color()))
	}
}

// renderDragGhost draws the dragged block at its current visual origin,
// plus a snapped placement preview when the drop would land on the board.
func (g *Game) renderDragGhost(dst *platformcore.Screen, drag *blocks.Drag) {
	block := drag.Block()
	if block == nil {
		return
	}

	if anchor, ok := g.dropAnchor(drag); ok {
		color := platformcore.ColorRed
		if g.session.Board().CanPlace(block, anchor) {
			color = platformcore.ColorGreen
		}
		for _, off := range block.Offsets() {
			x := g.boardX + (anchor.Col()+off.Col)*cellW
			y := g.boardY + (anchor.Row()+off.Row)*cellH
			g.renderCell(dst, x, y, '▒', color)
		}
	}

	origin := drag.BlockOrigin()
	g.renderBlock(dst, block, int(origin.X), int(origin.Y), blockColorToCore(block.Color()))
}

// renderBlock draws every cell of a block with its top-left at (x, y).
func (g *Game) renderBlock(dst *platformcore.Screen, block *blocks.Block, x, y int, color platformcore.Color) {
	for _, off := range block.Offsets() {
		g.renderCell(dst, x+off.Col*cellW, y+off.Row*cellH, '█', color)
	}
}

// renderCell fills one board cell worth of screen space.
func (g *Game) renderCell(dst *platformcore.Screen, x, y int, r rune, color platformcore.Color) {
	for cy := 0; cy < cellH; cy++ {
		for cx := 0; cx < cellW; cx++ {
			dst.SetColored(x+cx, y+cy, r, color)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ', platformcore.ColorDefault)
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// blockColorToCore maps engine block colors to platform colors.
func blockColorToCore(c blocks.BlockColor) platformcore.Color {
	switch c {
	case blocks.BlockRed:
		return platformcore.ColorRed
	case blocks.BlockGreen:
		return platformcore.ColorGreen
	case blocks.BlockYellow:
		return platformcore.ColorYellow
	case blocks.BlockBlue:
		return platformcore.ColorBlue
	case blocks.BlockMagenta:
		return platformcore.ColorMagenta
	case blocks.BlockCyan:
		return platformcore.ColorCyan
	case blocks.BlockOrange:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorWhite
	}
}
