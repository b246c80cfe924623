package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/sim"
	"lifegrid/internal/ui"
)

// cellCols is the number of terminal columns used per board cell, which
// keeps cells roughly square.
const cellCols = 2

const buttonGap = 2

var (
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	liveStyle   = tcell.StyleDefault.Background(tcell.ColorLimeGreen)
	buttonStyle = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

var buttonOrder = []sim.Command{sim.CmdToggleRun, sim.CmdStep, sim.CmdClear}

// View draws snapshots onto a tcell screen and maps screen positions back to
// cells and buttons.
type View struct {
	screen tcell.Screen
	dim    int
}

// NewView constructs a View for a dim x dim board.
func NewView(screen tcell.Screen, dim int) *View {
	return &View{screen: screen, dim: dim}
}

// Render implements sim.View.
func (v *View) Render(s sim.Snapshot) {
	if s.Board.Dim() != v.dim {
		panic("term: board dimension changed")
	}
	v.screen.Clear()
	cells := s.Board.Cells()
	for row := 0; row < v.dim; row++ {
		for col := 0; col < v.dim; col++ {
			style := deadStyle
			if cells[row*v.dim+col] {
				style = liveStyle
			}
			for i := 0; i < cellCols; i++ {
				v.screen.SetContent(col*cellCols+i, row, ' ', nil, style)
			}
		}
	}

	x := v.buttonsLeft()
	for _, cmd := range buttonOrder {
		x = drawText(v.screen, x, v.dim, buttonStyle, buttonLabel(cmd, s.Running)) + buttonGap
	}

	state := "stopped"
	if s.Running {
		state = "running"
	}
	status := fmt.Sprintf("gen %d  alive %d  %s", s.Generation, s.Board.Population(), state)
	drawText(v.screen, 0, v.dim+1, statusStyle, status)
	v.screen.Show()
}

// CellAt returns the cell drawn at screen position (x, y).
func (v *View) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || y >= v.dim || x >= v.dim*cellCols {
		return 0, 0, false
	}
	return y, x / cellCols, true
}

// ButtonAt returns the command of the button drawn at (x, y).
func (v *View) ButtonAt(x, y int) (sim.Command, bool) {
	if y != v.dim {
		return 0, false
	}
	left := v.buttonsLeft()
	for _, cmd := range buttonOrder {
		w := len(buttonLabel(cmd, false))
		if x >= left && x < left+w {
			return cmd, true
		}
		left += w + buttonGap
	}
	return 0, false
}

func (v *View) buttonsLeft() int {
	total := -buttonGap
	for _, cmd := range buttonOrder {
		total += len(buttonLabel(cmd, false)) + buttonGap
	}
	return max((v.dim*cellCols-total)/2, 0)
}

// buttonLabel pads every caption to the same width so the toggle does not
// shift its neighbours when it changes.
func buttonLabel(cmd sim.Command, running bool) string {
	return fmt.Sprintf("[ %-5s ]", ui.Label(cmd, running))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
