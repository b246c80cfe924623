package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidDimension is returned when a board is requested with a
// non-positive dimension.
var ErrInvalidDimension = errors.New("board dimension must be positive")

// Board stores a square grid of cells in row-major order. Its dimension is
// fixed at construction.
type Board struct {
	dim   int
	cells []bool
}

// NewBoard allocates a blank dim x dim board.
func NewBoard(dim int) (*Board, error) {
	if dim <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "dim=%d", dim)
	}
	return newBoard(dim), nil
}

func newBoard(dim int) *Board {
	return &Board{dim: dim, cells: make([]bool, dim*dim)}
}

// Dim returns the side length of the board.
func (b *Board) Dim() int { return b.dim }

// Cells exposes the backing slice in row-major order. Callers must treat it
// as read-only.
func (b *Board) Cells() []bool { return b.cells }

// Contains reports whether (row, col) lies on the board.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.dim && col >= 0 && col < b.dim
}

func (b *Board) index(row, col int) int {
	if !b.Contains(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d board", row, col, b.dim, b.dim))
	}
	return row*b.dim + col
}

// Get returns whether the cell at (row, col) is alive.
func (b *Board) Get(row, col int) bool { return b.cells[b.index(row, col)] }

// Set marks the cell at (row, col) alive or dead.
func (b *Board) Set(row, col int, alive bool) { b.cells[b.index(row, col)] = alive }

// Toggle flips the cell at (row, col) and returns its new state.
func (b *Board) Toggle(row, col int) bool {
	i := b.index(row, col)
	b.cells[i] = !b.cells[i]
	return b.cells[i]
}

// LiveNeighbors counts live cells in the Moore neighbourhood of (row, col).
// Positions off the board count as dead.
func (b *Board) LiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= b.dim {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= b.dim {
				continue
			}
			if b.cells[r*b.dim+c] {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation into a new board. The receiver is
// only read.
func (b *Board) Next() *Board {
	next := newBoard(b.dim)
	for row := 0; row < b.dim; row++ {
		for col := 0; col < b.dim; col++ {
			idx := row*b.dim + col
			next.cells[idx] = Conway(b.cells[idx], b.LiveNeighbors(row, col))
		}
	}
	return next
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, alive := range b.cells {
		if alive {
			n++
		}
	}
	return n
}

// Blank returns a fresh all-dead board with the same dimension.
func (b *Board) Blank() *Board { return newBoard(b.dim) }

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := newBoard(b.dim)
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both boards have the same dimension and cells.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.dim != o.dim {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board one row per line, '#' for alive and '.' for dead.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.dim * (b.dim + 1))
	for row := 0; row < b.dim; row++ {
		for col := 0; col < b.dim; col++ {
			if b.cells[row*b.dim+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
