//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/sim"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sim.Controller to the ebiten.Game interface. It is also the
// controller's View.
type Game struct {
	ctrl    *sim.Controller
	timers  *core.Timers
	layout  ui.Layout
	painter *render.GridPainter
	bar     *ui.ButtonBar

	frame sim.Snapshot
	title string
}

// New constructs a Game for the provided board and configuration. The
// controller runs its ticks on the ebiten update goroutine.
func New(board *core.Board, cfg *Config) *Game {
	timers := core.NewTimers(time.Now())
	ctrl := sim.New(board, cfg.Delay(), timers)
	ctrl.Verbose = cfg.Verbose
	layout := ui.Layout{Dim: board.Dim(), CellSize: cfg.CellSize}
	g := &Game{
		ctrl:    ctrl,
		timers:  timers,
		layout:  layout,
		painter: render.NewGridPainter(board.Dim()),
		bar:     ui.NewButtonBar(layout),
	}
	ctrl.SetView(g)
	return g
}

// WindowSize returns the window dimensions in pixels.
func (g *Game) WindowSize() (int, int) { return g.layout.Size() }

// Render records the latest frame. It implements sim.View.
func (g *Game) Render(s sim.Snapshot) {
	if s.Board.Dim() != g.painter.Dim() {
		panic("app: board dimension changed")
	}
	g.frame = s
	if title := windowTitle(s); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

// Update handles input and fires due simulation ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Dispatch(sim.CmdToggleRun)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Dispatch(sim.CmdStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Dispatch(sim.CmdClear)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		click(g.ctrl, g.layout, x, y)
	}

	g.timers.Advance(time.Now())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DeadColor)
	g.painter.Blit(screen, g.frame.Board.Cells(), render.LiveColor, render.DeadColor, g.layout.CellSize)
	g.bar.Draw(screen, g.frame.Running)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}
