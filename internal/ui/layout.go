package ui

import (
	"image"

	"lifegrid/internal/sim"
)

// BarHeight is the height in pixels of the control strip under the grid.
const BarHeight = 30

const (
	buttonHeight = 20
	buttonTop    = 5
	buttonGap    = 5
)

// Layout maps between window pixels and board cells.
type Layout struct {
	Dim      int
	CellSize int
}

// GridSize returns the side length of the grid in pixels.
func (l Layout) GridSize() int { return l.Dim * l.CellSize }

// Size returns the full window size, grid plus one pixel of padding plus the
// control strip.
func (l Layout) Size() (w, h int) {
	g := l.GridSize()
	return g, g + 1 + BarHeight
}

// CellAt returns the cell under pixel (x, y). ok is false for pixels outside
// the grid.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if l.CellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/l.CellSize, x/l.CellSize
	if row >= l.Dim || col >= l.Dim {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect returns the pixel bounds of a cell.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x, y := col*l.CellSize, row*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// Button is a clickable control in the strip under the grid.
type Button struct {
	Cmd  sim.Command
	Rect image.Rectangle
}

func (l Layout) buttonWidth() int {
	w := 80 * l.CellSize / 10
	if l.Dim < 50 {
		w = w * l.Dim / 50
	}
	return max(w, 1)
}

// Buttons returns the Start/Stop, Next and Clear buttons, centred under the
// grid.
func (l Layout) Buttons() []Button {
	w := l.buttonWidth()
	total := 3*w + 2*buttonGap
	x := (l.GridSize() - total) / 2
	y := l.GridSize() + 1 + buttonTop
	cmds := []sim.Command{sim.CmdToggleRun, sim.CmdStep, sim.CmdClear}
	buttons := make([]Button, len(cmds))
	for i, cmd := range cmds {
		buttons[i] = Button{Cmd: cmd, Rect: image.Rect(x, y, x+w, y+buttonHeight)}
		x += w + buttonGap
	}
	return buttons
}

// ButtonAt returns the command of the button under pixel (x, y).
func (l Layout) ButtonAt(x, y int) (sim.Command, bool) {
	for _, b := range l.Buttons() {
		if pointInRect(x, y, b.Rect) {
			return b.Cmd, true
		}
	}
	return 0, false
}

// Label returns the caption for a button given the run state.
func Label(cmd sim.Command, running bool) string {
	switch cmd {
	case sim.CmdToggleRun:
		if running {
			return "Stop"
		}
		return "Start"
	case sim.CmdStep:
		return "Next"
	case sim.CmdClear:
		return "Clear"
	default:
		return ""
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
