package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/sim"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(80, 40)
	return s
}

func newApp(t *testing.T, dim int) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t)
	board, err := core.NewBoard(dim)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return NewApp(s, board, time.Hour, false), s
}

func background(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := s.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return sb.String()
}

func click(a *App, x, y int) {
	a.Handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.Handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClickTogglesCell(t *testing.T) {
	a, s := newApp(t, 20)
	click(a, 7, 4)
	if !a.Controller().Board().Get(4, 3) {
		t.Fatalf("click at (7,4) should toggle cell (4,3):\n%s", a.Controller().Board())
	}
	if bg := background(t, s, 6, 4); bg != tcell.ColorLimeGreen {
		t.Fatalf("live cell drawn with background %v", bg)
	}
	if bg := background(t, s, 7, 4); bg != tcell.ColorLimeGreen {
		t.Fatalf("second column of live cell drawn with background %v", bg)
	}
	click(a, 6, 4)
	if a.Controller().Board().Population() != 0 {
		t.Fatal("second click should kill the cell")
	}
}

func TestHeldButtonTogglesOnce(t *testing.T) {
	a, _ := newApp(t, 20)
	a.Handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	a.Handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if !a.Controller().Board().Get(0, 0) {
		t.Fatal("drag over the same cell should toggle it once")
	}
}

func TestClickOutsideGridIsIgnored(t *testing.T) {
	a, _ := newApp(t, 20)
	click(a, 70, 5)
	click(a, 0, 30)
	if a.Controller().Board().Population() != 0 || a.Controller().Running() {
		t.Fatal("clicks outside the grid and buttons changed state")
	}
}

func TestButtons(t *testing.T) {
	a, s := newApp(t, 20)
	bar := rowText(s, 20)
	start := strings.Index(bar, "[ Start ]")
	next := strings.Index(bar, "[ Next  ]")
	clr := strings.Index(bar, "[ Clear ]")
	if start < 0 || next < 0 || clr < 0 {
		t.Fatalf("button row = %q", bar)
	}

	click(a, start+2, 20)
	if !a.Controller().Running() {
		t.Fatal("Start button did not start the simulation")
	}
	if !strings.Contains(rowText(s, 20), "[ Stop  ]") {
		t.Fatalf("toggle caption not updated: %q", rowText(s, 20))
	}
	click(a, start, 20)
	if a.Controller().Running() {
		t.Fatal("Stop button did not stop the simulation")
	}

	click(a, 2, 2)
	click(a, 4, 2)
	click(a, 6, 2)
	click(a, next+1, 20)
	if g := a.Controller().Generation(); g != 1 {
		t.Fatalf("Next button: generation %d, want 1", g)
	}
	if !strings.Contains(rowText(s, 21), "gen 1") {
		t.Fatalf("status line = %q", rowText(s, 21))
	}

	click(a, clr+8, 20)
	if a.Controller().Board().Population() != 0 {
		t.Fatal("Clear button did not clear the board")
	}
}

func TestKeys(t *testing.T) {
	a, _ := newApp(t, 20)
	if a.Handle(key(' ')) || !a.Controller().Running() {
		t.Fatal("space should start the simulation")
	}
	a.Handle(key(' '))
	a.Handle(key('n'))
	if a.Controller().Generation() != 1 {
		t.Fatal("n should step once")
	}
	a.Controller().ToggleCell(1, 1)
	a.Handle(key('c'))
	if a.Controller().Board().Population() != 0 || a.Controller().Generation() != 0 {
		t.Fatal("c should clear")
	}
	if !a.Handle(key('q')) {
		t.Fatal("q should quit")
	}
	if !a.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c should quit")
	}
	if !a.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestViewButtonAtMatchesDrawing(t *testing.T) {
	s := newScreen(t)
	v := NewView(s, 16)
	board, _ := core.NewBoard(16)
	v.Render(sim.Snapshot{Board: board})
	bar := rowText(s, 16)

	for _, cmd := range buttonOrder {
		label := buttonLabel(cmd, false)
		left := strings.Index(bar, label)
		if left < 0 {
			t.Fatalf("label %q missing from %q", label, bar)
		}
		for _, x := range []int{left, left + len(label) - 1} {
			if got, ok := v.ButtonAt(x, 16); !ok || got != cmd {
				t.Fatalf("ButtonAt(%d) = %v,%v, want %v", x, got, ok, cmd)
			}
		}
		if _, ok := v.ButtonAt(left-1, 16); ok {
			t.Fatalf("column left of %q reported as a button", label)
		}
	}
	if _, ok := v.ButtonAt(0, 15); ok {
		t.Fatal("grid row reported as button")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	a, s := newApp(t, 20)
	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newApp(t, 20)
	a.Controller().Start()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if a.Controller().Running() {
		t.Fatal("Run should stop the controller on exit")
	}
}

func TestRunAdvancesOnTicks(t *testing.T) {
	s := newScreen(t)
	board, _ := core.NewBoard(20)
	core.Seed(board, "blinker", 0)
	a := NewApp(s, board, time.Millisecond, false)

	gens := make(chan int, 1)
	a.Controller().Start()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	// Sample the generation from the control goroutine itself.
	deadline := time.After(5 * time.Second)
	for {
		a.loop.AfterFunc(5*time.Millisecond, func() {
			select {
			case gens <- a.ctrl.Generation():
			default:
			}
		})
		select {
		case g := <-gens:
			if g >= 3 {
				cancel()
				if err := <-done; err != nil {
					t.Fatalf("Run: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("controller did not advance while running")
		}
	}
}
