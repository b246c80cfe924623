// Package term is a terminal front-end for the simulation built on tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
	"lifegrid/internal/sim"
)

// App wires a controller, a View and a tcell screen. All controller calls
// happen on the goroutine running the control loop inside Run.
type App struct {
	screen tcell.Screen
	ctrl   *sim.Controller
	loop   *Loop
	view   *View

	buttons tcell.ButtonMask
}

// NewApp builds an App on an initialised screen.
func NewApp(screen tcell.Screen, board *core.Board, delay time.Duration, verbose bool) *App {
	loop := NewLoop()
	ctrl := sim.New(board, delay, loop)
	ctrl.Verbose = verbose
	screen.EnableMouse()
	screen.SetStyle(deadStyle)
	a := &App{screen: screen, ctrl: ctrl, loop: loop, view: NewView(screen, board.Dim())}
	ctrl.SetView(a.view)
	return a
}

// Controller exposes the simulation controller.
func (a *App) Controller() *sim.Controller { return a.ctrl }

// Run processes terminal events and simulation ticks until the user quits or
// ctx is cancelled. The screen is finalised before Run returns.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	stopped := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-stopped:
				return nil
			}
		}
	})

	g.Go(func() error {
		defer a.screen.Fini()
		defer close(stopped)
		defer a.loop.Close()
		defer a.ctrl.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case fn := <-a.loop.Tasks():
				fn()
			case ev := <-events:
				if a.Handle(ev) {
					return nil
				}
			}
		}
	})

	return g.Wait()
}

// Handle applies one terminal event and reports whether the user asked to
// quit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.view.Render(a.ctrl.Snapshot())
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			a.ctrl.Dispatch(sim.CmdToggleRun)
		case 'n', 'N':
			a.ctrl.Dispatch(sim.CmdStep)
		case 'c', 'C':
			a.ctrl.Dispatch(sim.CmdClear)
		}
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	if row, col, ok := a.view.CellAt(x, y); ok {
		a.ctrl.ToggleCell(row, col)
		return
	}
	if cmd, ok := a.view.ButtonAt(x, y); ok {
		a.ctrl.Dispatch(cmd)
	}
}
