package snake

import (
	"fmt"

	"github.com/vovakirdan/startpage-snake/internal/core"
)

// hudHeight is the number of rows above the board: status line and separator.
const hudHeight = 2

// Board glyphs.
const (
	glyphBackground = '·'
	glyphBody       = 'o'
	glyphHead       = '@'
	glyphFood       = '*'
)

// boardSize returns the outer size of the boxed board in screen cells.
func (g *Game) boardSize() (w, h int) {
	n := g.cfg.Board.GridSize()
	return n*g.cellWidth() + 2, n + 2
}

func (g *Game) cellWidth() int {
	return max(g.cfg.Board.CellWidth, 1)
}

// MinScreenSize returns the smallest screen that fits the HUD and the board.
func (g *Game) MinScreenSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw, hudHeight + bh
}

// boardRect returns the boxed board position, centered below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	bw, bh := g.boardSize()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	r := area.Centered(bw, bh)
	r.X = core.Clamp(r.X, 0, max(dst.Width()-bw, 0))
	r.Y = core.Clamp(r.Y, hudHeight, max(dst.Height()-bh, hudHeight))
	return r
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.MinScreenSize()
		g.renderOverlay(dst, core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", w, h))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)
	g.renderBackground(dst, board)
	g.renderFood(dst, board)
	g.renderSnake(dst, board)

	s := g.session
	switch s.Status() {
	case StatusIdle:
		g.renderOverlay(dst, core.ColorWhite, g.title, "Press Enter or Space to start")
	case StatusPaused:
		g.renderOverlay(dst, core.ColorYellow, "Paused", "Press P or Space to continue")
	case StatusGameOver, StatusWon:
		if g.blink.Active() {
			return
		}
		headline := "Game Over"
		if s.Status() == StatusWon {
			headline = "Board cleared!"
		}
		g.renderOverlay(dst, core.ColorBrightRed,
			headline,
			fmt.Sprintf("Score: %d  High Score: %d", s.Score(), s.HighScore()),
			"Press R or Space to play again")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf(" %s  Score: %d  High: %d  Speed: %dms",
		g.title, s.Score(), s.HighScore(), s.Interval().Milliseconds())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	if s.Status() == StatusPaused {
		label := "PAUSED "
		dst.DrawTextColor(dst.Width()-len(label), 0, label, core.ColorYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// cellOrigin maps a board cell to its leftmost screen column and row.
func (g *Game) cellOrigin(board core.Rect, c Cell) (x, y int) {
	return board.X + 1 + c.X*g.cellWidth(), board.Y + 1 + c.Y
}

func (g *Game) renderBackground(dst *core.Screen, board core.Rect) {
	n := g.session.GridSize()
	for y := range n {
		for x := range n {
			sx, sy := g.cellOrigin(board, Cell{X: x, Y: y})
			dst.SetColor(sx, sy, glyphBackground, core.ColorCharcoal)
		}
	}
}

func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	food := g.session.Food()
	if food.X < 0 || food.Y < 0 {
		return
	}
	x, y := g.cellOrigin(board, food)
	dst.SetColor(x, y, glyphFood, core.ColorCoral)
}

// renderSnake draws the body and a distinguished head. During the
// game-over flash the whole snake turns red on alternate phases.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	red := g.blink.Red()
	for i, seg := range g.session.Snake() {
		x, y := g.cellOrigin(board, seg)
		glyph, color := glyphBody, core.ColorPurple
		if i == 0 {
			glyph, color = glyphHead, core.ColorLavender
		}
		if red {
			color = core.ColorRed
		}
		dst.SetColor(x, y, glyph, color)
	}
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
