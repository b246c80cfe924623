package core

import "time"

// Timer is a handle to a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped it; false means it already ran or was stopped before.
	Stop() bool
}

// Scheduler runs callbacks after a delay on its owner's control goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Pattern seeds a board. Implementations must clip to the board bounds.
type Pattern func(b *Board, rng *RNG)

var patterns = map[string]Pattern{}

// RegisterPattern adds a seed pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Pattern {
	return patterns
}
