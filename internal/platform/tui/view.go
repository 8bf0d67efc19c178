package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout constants
const (
	cellWidth  = 2  // Terminal columns per board cell
	panelGap   = 2  // Columns between the board and the side panel
	panelWidth = 22 // Width of the side panel
)

const (
	blockGlyph = '█'
	emptyGlyph = '·'
)

// boardView is the renderer the game drives. It keeps the latest board and
// whether the loss notice is up, and draws both onto a Screen.
type boardView struct {
	grid tetris.Grid
	lost bool
}

func newBoardView(initial tetris.Grid) *boardView {
	return &boardView{grid: initial}
}

// StateChanged implements tetris.Renderer.
func (v *boardView) StateChanged(grid tetris.Grid) {
	v.grid = grid
}

// Lost implements tetris.Renderer.
func (v *boardView) Lost() {
	v.lost = true
}

// dismissLoss hides the loss notice once the player has acknowledged it.
func (v *boardView) dismissLoss() {
	v.lost = false
}

// boardRect is the framed board area including its border.
func (v *boardView) boardRect() core.Rect {
	return core.NewRect(0, 0, v.grid.Width()*cellWidth+2, v.grid.Height()+2)
}

// Size returns the screen area the view needs.
func (v *boardView) Size() (w, h int) {
	r := v.boardRect()
	return r.W + panelGap + panelWidth, max(r.H, len(tetris.Kinds)+6)
}

// Draw renders the board, the side panel and, after a loss, the notice.
func (v *boardView) Draw(s *core.Screen, phase tetris.Phase) {
	s.Clear()

	frame := v.boardRect()
	s.DrawBox(frame)
	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			sx, sy := frame.X+1+x*cellWidth, frame.Y+1+y
			k, ok := v.grid.At(x, y).Kind()
			if !ok {
				s.SetColored(sx+1, sy, emptyGlyph, core.ColorGray)
				continue
			}
			color := KindColor(k)
			for i := 0; i < cellWidth; i++ {
				s.SetColored(sx+i, sy, blockGlyph, color)
			}
		}
	}

	v.drawPanel(s, frame.Right()+panelGap, frame.Y, phase)

	if v.lost {
		v.drawLossNotice(s, frame)
	}
}

func (v *boardView) drawPanel(s *core.Screen, x, y int, phase tetris.Phase) {
	s.DrawTextColored(x, y, "T E T R I S", core.ColorWhite)
	s.DrawText(x, y+2, StatusText(phase))
	s.DrawTextColored(x, y+3, blocksText(v.grid.OccupiedCount()), core.ColorGray)

	for i, k := range tetris.Kinds {
		row := y + 5 + i
		s.SetColored(x, row, blockGlyph, KindColor(k))
		s.SetColored(x+1, row, blockGlyph, KindColor(k))
		s.DrawText(x+3, row, k.String())
	}
}

func (v *boardView) drawLossNotice(s *core.Screen, frame core.Rect) {
	const w, h = 18, 5
	box := core.NewRect(frame.X+(frame.W-w)/2, frame.Y+(frame.H-h)/2, w, h)
	s.Fill(box, ' ')
	s.DrawBox(box)
	drawCentered(s, box, box.Y+1, "GAME OVER", core.ColorRed)
	drawCentered(s, box, box.Y+3, "enter: continue", core.ColorDefault)
}

func drawCentered(s *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := core.Clamp(box.X+(box.W-len([]rune(text)))/2, box.X, box.Right()-1)
	s.DrawTextColored(x, y, text, c)
}

// StatusText describes the phase for the side panel.
func StatusText(phase tetris.Phase) string {
	switch phase {
	case tetris.PhaseWaiting:
		return "Press enter to start"
	case tetris.PhaseActive:
		return "Playing"
	case tetris.PhaseGameOver:
		return "Game over"
	default:
		return ""
	}
}

func blocksText(n int) string {
	if n == 1 {
		return "1 block on the board"
	}
	return fmt.Sprintf("%d blocks on the board", n)
}
