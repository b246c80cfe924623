package term

import (
	"sync"
	"time"

	"lifegrid/internal/core"
)

// Loop is a core.Scheduler that hands due callbacks to the goroutine reading
// Tasks, so they run serialized with terminal event handling.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop constructs an open Loop.
func NewLoop() *Loop {
	return &Loop{tasks: make(chan func()), done: make(chan struct{})}
}

// AfterFunc waits d on a runtime timer, then queues fn for the loop
// goroutine. Callbacks still waiting when the loop closes are dropped.
func (l *Loop) AfterFunc(d time.Duration, fn func()) core.Timer {
	t := time.AfterFunc(d, func() {
		select {
		case l.tasks <- fn:
		case <-l.done:
		}
	})
	return loopTimer{t}
}

// Tasks delivers due callbacks. The receiver must run them.
func (l *Loop) Tasks() <-chan func() { return l.tasks }

// Close releases every timer blocked on delivery.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

type loopTimer struct {
	t *time.Timer
}

// Stop reports false once the callback has been handed to the loop; the
// controller discards such stale ticks itself.
func (lt loopTimer) Stop() bool { return lt.t.Stop() }
