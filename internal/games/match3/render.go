package match3

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth = 3 // Symbol plus a marker on each side
	hudHeight = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.board == nil || g.board.Grid() == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.level.Cols*cellWidth + 2
	boardH := g.level.Rows + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight
	frame := platformcore.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst)
	g.renderBoard(dst, frame)
	g.renderStatus(dst, frame)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "Cannot start game", platformcore.ColorRed)
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error())
	}
}

// renderHUD draws the title, score line and level line, each centered on
// the screen.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(0, g.Title(), platformcore.ColorBrightMagenta)
	dst.DrawTextCentered(1, g.scoreLine(g.scorer.Total(), g.scorer.BestCombo()))
	dst.DrawTextCentered(2, g.levelLine(g.movesLeft, g.movesMade, g.target))
}

func (g *Game) scoreLine(score, combo int) string {
	return fmt.Sprintf("Score: %d  Best combo: x%d", score, combo)
}

func (g *Game) levelLine(movesLeft, movesMade, target int) string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Endless  Moves: %d", movesMade)
	}
	level := fmt.Sprintf("Level %d/%d", g.levelIndex+1, len(g.levelList))
	if name := g.level.Name; name != "" && name != fmt.Sprintf("Level %d", g.level.ID) {
		level += " " + name
	}
	return fmt.Sprintf("%s  Moves: %d  Target: %d", level, movesLeft, target)
}

// hudWidth is the widest the HUD lines get for the current level, with room
// for a seven digit score and a two digit combo.
func (g *Game) hudWidth() int {
	widest := 9999999
	return max(
		len(g.Title()),
		len(g.scoreLine(widest, 99)),
		len(g.levelLine(g.movesLeft, widest, max(g.target, widest))),
	)
}

// renderBoard draws the frame and the tiles with cursor and hint markers.
func (g *Game) renderBoard(dst *platformcore.Screen, frame platformcore.Rect) {
	frameColor := platformcore.ColorGray
	if g.board.Busy() {
		frameColor = platformcore.ColorBlue
	}
	dst.DrawBox(frame, frameColor)

	grid := g.board.Grid()
	if grid == nil {
		return
	}
	catalog := g.catalog

	showHint := g.hintTicks > 0
	pending := make(map[core.Coord]bool)
	for _, c := range g.board.Pending().Coords() {
		pending[c] = true
	}
	for r := range grid.Rows() {
		for c := range grid.Cols() {
			pos := core.At(r, c)
			x := frame.X + 1 + c*cellWidth
			y := frame.Y + 1 + r

			symbol, color := '·', platformcore.ColorGray
			if kind, ok := grid.KindAt(pos); ok {
				if def, err := catalog.KindForID(kind); err == nil {
					symbol = def.Symbol
					color = g.colors[kind]
				}
			}
			dst.SetColored(x+1, y, symbol, color)

			switch {
			case pending[pos]:
				dst.SetColored(x, y, '(', platformcore.ColorBrightRed)
				dst.SetColored(x+2, y, ')', platformcore.ColorBrightRed)
			case pos == g.cursor && g.selected:
				dst.SetColored(x, y, '<', platformcore.ColorBrightYellow)
				dst.SetColored(x+2, y, '>', platformcore.ColorBrightYellow)
			case pos == g.cursor:
				dst.SetColored(x, y, '[', platformcore.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', platformcore.ColorBrightWhite)
			case showHint && (pos == g.hint.From || pos == g.hint.Target()):
				dst.SetColored(x, y, '*', platformcore.ColorBrightCyan)
				dst.SetColored(x+2, y, '*', platformcore.ColorBrightCyan)
			}
		}
	}
}

// renderStatus draws the resolution state or the last combo under the board.
func (g *Game) renderStatus(dst *platformcore.Screen, frame platformcore.Rect) {
	y := frame.Bottom()

	var status string
	switch {
	case g.board.Busy():
		status = "Resolving..."
	case g.message != "":
		status = g.message
	case len(g.lastWaves) > 1:
		status = fmt.Sprintf("Combo x%d!", len(g.lastWaves))
	case g.selected:
		status = "Choose a direction"
	}
	if status != "" {
		dst.DrawTextCenteredColored(y, status, platformcore.ColorYellow)
	}
}

// renderOverlays draws pause, level clear and game over messages.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	var lines []string
	color := platformcore.ColorBrightWhite

	switch {
	case g.paused:
		lines = []string{"PAUSED", "Press P to resume"}
	case g.won:
		lines = []string{"YOU WIN!", fmt.Sprintf("Final score: %d", g.scorer.Total()), "R to restart  Q to quit"}
		color = platformcore.ColorBrightGreen
	case g.cleared:
		lines = []string{"LEVEL CLEARED!", fmt.Sprintf("Score: %d", g.scorer.Total())}
		color = platformcore.ColorBrightGreen
	case g.gameOver:
		title := "GAME OVER"
		if g.err != nil && g.message == "" {
			title = "ERROR"
		}
		lines = []string{title}
		if g.message != "" {
			lines = append(lines, g.message)
		}
		if g.mode == ModeCampaign && g.err == nil {
			lines = append(lines, fmt.Sprintf("Target: %d", g.target))
		}
		lines = append(lines, "R to restart  Q to quit")
		color = platformcore.ColorBrightRed
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := frame.Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
