package app

import (
	"fmt"

	"lifegrid/internal/sim"
	"lifegrid/internal/ui"
)

// windowTitle summarises a frame for the window title bar.
func windowTitle(s sim.Snapshot) string {
	state := "stopped"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("Conway's Game of Life - gen %d, %d alive, %s", s.Generation, s.Board.Population(), state)
}

// click routes a left click at window pixel (x, y) to the controller. It
// reports whether the click hit a cell or a button.
func click(ctrl *sim.Controller, layout ui.Layout, x, y int) bool {
	if row, col, ok := layout.CellAt(x, y); ok {
		return ctrl.ToggleCell(row, col)
	}
	if cmd, ok := layout.ButtonAt(x, y); ok {
		ctrl.Dispatch(cmd)
		return true
	}
	return false
}
