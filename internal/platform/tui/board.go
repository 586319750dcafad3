package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
)

const (
	cellWidth  = 8 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardView is everything drawGame needs for one screen.
type boardView struct {
	Frame     t2048.Frame
	Anim      *slideAnimation
	Highlight map[t2048.TileID]bool // Tiles that just spawned or merged
	Cursor    t2048.Pos             // Swap cursor, shown in swap mode
	Message   string
}

// boardDims returns the board size in screen cells for an n×n grid.
func boardDims(n int) (w, h int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// drawGame renders the HUD, board and overlays.
func drawGame(dst *core.Screen, v boardView) {
	dst.Clear()

	boardW, boardH := boardDims(v.Frame.Size)
	if dst.Width() < boardW || dst.Height() < hudHeight+boardH+2 {
		drawTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	drawHUD(dst, v.Frame, boardX, boardW)
	drawGrid(dst, v.Frame.Size, boardX, boardY)
	drawTiles(dst, v, boardX, boardY)

	if v.Message != "" {
		msgX := boardX + (boardW-len(v.Message))/2
		dst.DrawTextColor(msgX, boardY+boardH, v.Message, core.ColorYellow)
	}

	if v.Frame.GameOver && v.Anim == nil {
		drawOverlay(dst, boardX+boardW/2, boardY+boardH/2,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", v.Frame.MaxTile),
			"N: new game  U: undo",
		)
	}
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawHUD draws the title, scores and remaining powers.
func drawHUD(dst *core.Screen, f t2048.Frame, boardX, boardW int) {
	title := "2 0 4 8"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorOrange)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", f.Score))
	best := fmt.Sprintf("Best: %d", f.Best)
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)

	info := fmt.Sprintf("Moves: %d  Undo: %d  Swaps: %d", f.MoveCount, f.UndosLeft, f.SwapsLeft)
	dst.DrawTextColor(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)

	if f.SwapMode {
		mode := "SWAP MODE"
		dst.DrawTextColor(boardX+(boardW-len(mode))/2, 3, mode, core.ColorBrightMagenta)
	}
}

// drawGrid draws the cell borders of an n×n board.
func drawGrid(dst *core.Screen, n, boardX, boardY int) {
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// drawTiles draws resting tiles, then any tiles still sliding.
func drawTiles(dst *core.Screen, v boardView, boardX, boardY int) {
	f := v.Frame

	if f.SwapMode {
		cx := boardX + v.Cursor.Col*cellWidth
		cy := boardY + v.Cursor.Row*cellHeight + 1
		dst.SetCell(cx+1, cy, '[', core.ColorBrightMagenta)
		dst.SetCell(cx+cellWidth-1, cy, ']', core.ColorBrightMagenta)
	}

	for _, t := range f.Tiles {
		if v.Anim != nil && v.Anim.animates(t.ID) {
			continue
		}
		color := core.TileColor(t.Value)
		switch {
		case t.ID == f.Selected:
			color = core.ColorBrightMagenta
		case v.Highlight[t.ID]:
			color = core.ColorBrightYellow
		}
		drawValue(dst, float64(boardX+t.Col*cellWidth), float64(boardY+t.Row*cellHeight+1), t.Value, color)
	}

	if v.Anim == nil {
		return
	}
	p := v.Anim.progress()
	for _, ta := range v.Anim.tiles {
		row, col := ta.position(p)
		x := float64(boardX) + col*cellWidth
		y := float64(boardY) + row*cellHeight + 1
		drawValue(dst, x, y, ta.Value, core.TileColor(ta.Value))
	}
}

// drawValue centers a tile value in the cell whose left border is at x.
func drawValue(dst *core.Screen, x, y float64, value int, color core.Color) {
	s := strconv.Itoa(value)
	pad := max((cellWidth-1-len(s))/2, 0)
	px := int(math.Round(x)) + 1 + pad
	dst.DrawTextColor(px, int(math.Round(y)), s, color)
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
