package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	leftMargin = 2
	topMargin  = 1
	// A grid block is two terminal cells wide so it looks square
	BlockWidth = 2
	// Board size on screen including the border
	BoardWidth  = tetris.Cols*BlockWidth + 2
	BoardHeight = tetris.Rows + 2
	panelGap    = 3

	PausedText   = "Game Paused"
	GameOverText = "Game Over"
)

// HelpLines describe the default key bindings
var HelpLines = []string{
	"A/←  left",
	"D/→  right",
	"S/↓  soft drop",
	"R/↑  rotate",
	"P    pause",
	"N    restart",
	"Q    quit",
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// cellPos converts a grid position into screen coordinates inside a board at (x, y)
func cellPos(x, y, row, col int) (int, int) {
	return x + 1 + col*BlockWidth, y + 1 + row
}

// drawBorder draws the frame around the board
func drawBorder(s tcell.Screen, x, y int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Border).Background(t.Background)
	right, bottom := x+BoardWidth-1, y+BoardHeight-1
	for col := x + 1; col < right; col++ {
		drawRune(s, col, y, style, '━')
		drawRune(s, col, bottom, style, '━')
	}
	for row := y + 1; row < bottom; row++ {
		drawRune(s, x, row, style, '┃')
		drawRune(s, right, row, style, '┃')
	}
	drawRune(s, x, y, style, '┏')
	drawRune(s, right, y, style, '┓')
	drawRune(s, x, bottom, style, '┗')
	drawRune(s, right, bottom, style, '┛')
}

// drawEmpty fills an empty grid cell with the background and a dot
func drawEmpty(s tcell.Screen, col, row int, t Theme) {
	style := tcell.StyleDefault.Background(t.Background).Foreground(t.Dot)
	drawRune(s, col, row, style, '·')
	drawRune(s, col+1, row, style, ' ')
}

// drawBlock draws a bevelled block: light left edge, dark right edge
func drawBlock(s tcell.Screen, col, row int, c tetris.Color) {
	fill, light, dark := BlockColors(c)
	drawRune(s, col, row, tcell.StyleDefault.Background(fill).Foreground(light), '▏')
	drawRune(s, col+1, row, tcell.StyleDefault.Background(fill).Foreground(dark), '▕')
}

// drawShadow marks where the falling piece would land
func drawShadow(s tcell.Screen, col, row int, c tetris.Color, t Theme) {
	style := tcell.StyleDefault.Background(ShadowColor(c, shadowBase(t)))
	drawRune(s, col, row, style, ' ')
	drawRune(s, col+1, row, style, ' ')
}

// drawGrid draws locked blocks, the shadow and the falling piece
func drawGrid(s tcell.Screen, x, y int, snap tetris.Snapshot, t Theme) {
	for row := 0; row < tetris.Rows; row++ {
		for col := 0; col < tetris.Cols; col++ {
			sx, sy := cellPos(x, y, row, col)
			if c := snap.Grid.Cell(row, col); c != tetris.Empty {
				drawBlock(s, sx, sy, c)
			} else {
				drawEmpty(s, sx, sy, t)
			}
		}
	}
	if snap.GameOver {
		return
	}

	shadow := snap.Current
	shadow.Y = snap.ShadowY
	for _, c := range shadow.Cells() {
		if c.Row < 0 || snap.Grid.IsOccupied(c.Row, c.Col) {
			continue
		}
		sx, sy := cellPos(x, y, c.Row, c.Col)
		drawShadow(s, sx, sy, c.Color, t)
	}
	for _, c := range snap.Current.Cells() {
		if c.Row < 0 {
			continue
		}
		sx, sy := cellPos(x, y, c.Row, c.Col)
		drawBlock(s, sx, sy, c.Color)
	}
}

// drawOverlay centers a label over the board
func drawOverlay(s tcell.Screen, x, y int, text string, t Theme) {
	style := tcell.StyleDefault.Background(t.OverlayBg).Foreground(t.OverlayFg).Bold(true)
	label := fmt.Sprintf("  %s  ", text)
	width := len([]rune(label))
	ox := x + (BoardWidth-width)/2
	oy := y + BoardHeight/2
	drawText(s, ox, oy-1, style, fmt.Sprintf("%*s", width, ""))
	drawText(s, ox, oy, style, label)
	drawText(s, ox, oy+1, style, fmt.Sprintf("%*s", width, ""))
}

// drawPaused hides the board behind the pause label
func drawPaused(s tcell.Screen, x, y int, t Theme) {
	style := tcell.StyleDefault.Background(t.Background)
	for row := 0; row < tetris.Rows; row++ {
		for col := 0; col < tetris.Cols; col++ {
			sx, sy := cellPos(x, y, row, col)
			drawRune(s, sx, sy, style, ' ')
			drawRune(s, sx+1, sy, style, ' ')
		}
	}
	drawOverlay(s, x, y, PausedText, t)
}

// drawPanel displays the player, score and lines next to the board
func drawPanel(s tcell.Screen, x, y int, gs *GameState) {
	t := gs.Theme
	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	valueStyle := tcell.StyleDefault.Foreground(t.Value).Bold(true)
	row := y + 1
	if gs.Player != "" {
		drawText(s, x, row, labelStyle, "Player")
		drawText(s, x, row+1, valueStyle, gs.Player)
		row += 3
	}
	drawText(s, x, row, labelStyle, "Score")
	drawText(s, x, row+1, valueStyle, fmt.Sprintf("%d", gs.Snapshot.Score))
	drawText(s, x, row+3, labelStyle, "Lines")
	drawText(s, x, row+4, valueStyle, fmt.Sprintf("%d", gs.Snapshot.Lines))
}

// drawHelp lists the key bindings under the panel
func drawHelp(s tcell.Screen, x, y int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Help)
	for i, line := range HelpLines {
		drawText(s, x, y+i, style, line)
	}
}

// Draw renders the game with the top-left of the board at (x, y)
func Draw(s tcell.Screen, x, y int, gs *GameState) {
	drawBorder(s, x, y, gs.Theme)
	if gs.Snapshot.Paused {
		drawPaused(s, x, y, gs.Theme)
	} else {
		drawGrid(s, x, y, gs.Snapshot, gs.Theme)
		if gs.Snapshot.GameOver {
			drawOverlay(s, x, y, GameOverText, gs.Theme)
		}
	}
	px := x + BoardWidth + panelGap
	drawPanel(s, px, y, gs)
	drawHelp(s, px, y+BoardHeight-len(HelpLines)-1, gs.Theme)
}

// Render draws the screen
func Render(gs *GameState) {
	gs.S.Clear()
	Draw(gs.S, leftMargin, topMargin, gs)
	// Update screen
	gs.S.Show()
}
