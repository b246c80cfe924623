// Package sim sequences generation advances of a core.Board, either one at a
// time or on a timer, and mediates edits coming from a presentation layer.
//
// A Controller is not safe for concurrent use. Every call, including the
// callbacks it hands to its Scheduler, must run on the single goroutine that
// owns the presentation loop.
package sim

import (
	"log"
	"time"

	"lifegrid/internal/core"
)

// DefaultDelay is the tick interval used when none is configured.
const DefaultDelay = 800 * time.Millisecond

// Snapshot is what a View needs to draw one frame.
type Snapshot struct {
	Board      *core.Board
	Generation int
	Running    bool
}

// View is notified after every state change.
type View interface {
	Render(Snapshot)
}

// Command is a user intent forwarded by a presentation layer.
type Command int

const (
	// CmdToggleRun starts or stops auto-advance.
	CmdToggleRun Command = iota
	// CmdStep advances a single generation.
	CmdStep
	// CmdClear blanks the board.
	CmdClear
)

func (c Command) String() string {
	switch c {
	case CmdToggleRun:
		return "toggle-run"
	case CmdStep:
		return "step"
	case CmdClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Controller owns the current board and the run state.
type Controller struct {
	board      *core.Board
	generation int

	delay   time.Duration
	sched   core.Scheduler
	running bool
	epoch   uint64
	pending core.Timer

	view    View
	Verbose bool
}

// New constructs a stopped Controller around board. A non-positive delay
// falls back to DefaultDelay.
func New(board *core.Board, delay time.Duration, sched core.Scheduler) *Controller {
	if board == nil || sched == nil {
		panic("sim: New requires a board and a scheduler")
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{board: board, delay: delay, sched: sched}
}

// SetView attaches the presentation layer and renders the current state.
func (c *Controller) SetView(v View) {
	c.view = v
	c.render()
}

// Board returns the current generation.
func (c *Controller) Board() *core.Board { return c.board }

// Running reports whether auto-advance is active.
func (c *Controller) Running() bool { return c.running }

// Generation returns the number of advances since start or the last Clear.
func (c *Controller) Generation() int { return c.generation }

// Delay returns the configured tick interval.
func (c *Controller) Delay() time.Duration { return c.delay }

// Snapshot returns the state a View draws.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Board: c.board, Generation: c.generation, Running: c.running}
}

// ToggleCell flips one cell. Coordinates outside the board are ignored and
// reported as false.
func (c *Controller) ToggleCell(row, col int) bool {
	if !c.board.Contains(row, col) {
		c.debugf("ignoring toggle outside board at (%d,%d)", row, col)
		return false
	}
	c.board.Toggle(row, col)
	c.render()
	return true
}

// StepOnce advances exactly one generation without touching the run state.
func (c *Controller) StepOnce() {
	c.advance()
	c.render()
}

// Start begins auto-advancing. It does nothing if already running.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.epoch++
	c.schedule()
	c.debugf("running, delay %s", c.delay)
	c.render()
}

// Stop halts auto-advancing. It does nothing if already stopped.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.epoch++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.debugf("stopped at generation %d", c.generation)
	c.render()
}

// ToggleRun starts a stopped controller and stops a running one.
func (c *Controller) ToggleRun() {
	if c.running {
		c.Stop()
		return
	}
	c.Start()
}

// Clear replaces the board with a blank one and resets the generation count.
// The run state is kept.
func (c *Controller) Clear() {
	c.board = c.board.Blank()
	c.generation = 0
	c.debugf("cleared")
	c.render()
}

// Dispatch applies a user command.
func (c *Controller) Dispatch(cmd Command) {
	switch cmd {
	case CmdToggleRun:
		c.ToggleRun()
	case CmdStep:
		c.StepOnce()
	case CmdClear:
		c.Clear()
	default:
		panic("sim: unknown command")
	}
}

func (c *Controller) schedule() {
	epoch := c.epoch
	c.pending = c.sched.AfterFunc(c.delay, func() { c.tick(epoch) })
}

func (c *Controller) tick(epoch uint64) {
	if !c.running || epoch != c.epoch {
		return
	}
	c.pending = nil
	c.advance()
	if c.running {
		c.schedule()
	}
	c.render()
}

func (c *Controller) advance() {
	next := c.board.Next()
	if next.Dim() != c.board.Dim() {
		panic("sim: generation changed board dimension")
	}
	c.board = next
	c.generation++
}

func (c *Controller) render() {
	if c.view != nil {
		c.view.Render(c.Snapshot())
	}
}

func (c *Controller) debugf(format string, args ...any) {
	if c.Verbose {
		log.Printf("sim: "+format, args...)
	}
}
