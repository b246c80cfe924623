package core

import (
	"sort"
	"time"
)

// Timers is a frame-driven Scheduler. Callbacks run on whichever goroutine
// calls Advance, which makes it suitable for game loops that already own a
// single thread of control.
type Timers struct {
	now     time.Time
	seq     uint64
	pending []*frameTimer
}

type frameTimer struct {
	owner    *Timers
	deadline time.Time
	seq      uint64
	fn       func()
}

// NewTimers constructs a Timers whose clock starts at start.
func NewTimers(start time.Time) *Timers {
	return &Timers{now: start}
}

// Now returns the time passed to the most recent Advance.
func (t *Timers) Now() time.Time { return t.now }

// AfterFunc schedules fn to run on the first Advance at or after now+d.
func (t *Timers) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	t.seq++
	ft := &frameTimer{owner: t, deadline: t.now.Add(d), seq: t.seq, fn: fn}
	t.pending = append(t.pending, ft)
	return ft
}

// Pending returns the number of callbacks waiting to fire.
func (t *Timers) Pending() int { return len(t.pending) }

// Advance moves the clock to now and runs every callback that was due when
// the call began, earliest deadline first. Callbacks scheduled while
// advancing wait for the next call.
func (t *Timers) Advance(now time.Time) {
	if now.After(t.now) {
		t.now = now
	}
	var due, keep []*frameTimer
	for _, ft := range t.pending {
		if !ft.deadline.After(t.now) {
			due = append(due, ft)
			continue
		}
		keep = append(keep, ft)
	}
	if len(due) == 0 {
		return
	}
	t.pending = keep
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, ft := range due {
		// An earlier callback in this batch may have stopped a later one.
		if ft.fn == nil {
			continue
		}
		fn := ft.fn
		ft.fn = nil
		fn()
	}
}

// Stop cancels the callback. It reports false if the callback already ran
// or was stopped.
func (ft *frameTimer) Stop() bool {
	if ft.fn == nil {
		return false
	}
	ft.fn = nil
	t := ft.owner
	for i, p := range t.pending {
		if p == ft {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			break
		}
	}
	return true
}
