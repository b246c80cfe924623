package core

import (
	"errors"
	"strings"
	"testing"
)

func mustBoard(t *testing.T, dim int) *Board {
	t.Helper()
	b, err := NewBoard(dim)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", dim, err)
	}
	return b
}

func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := mustBoard(t, len(rows))
	for r, line := range rows {
		if len(line) != len(rows) {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), len(rows))
		}
		for c, ch := range line {
			b.Set(r, c, ch == '#')
		}
	}
	return b
}

func TestNewBoardBlank(t *testing.T) {
	b := mustBoard(t, 20)
	if b.Dim() != 20 {
		t.Fatalf("Dim() = %d, want 20", b.Dim())
	}
	if len(b.Cells()) != 400 {
		t.Fatalf("len(Cells()) = %d, want 400", len(b.Cells()))
	}
	if b.Population() != 0 {
		t.Fatalf("new board has %d live cells", b.Population())
	}
}

func TestNewBoardRejectsNonPositive(t *testing.T) {
	for _, dim := range []int{0, -1, -60} {
		b, err := NewBoard(dim)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewBoard(%d) error = %v, want ErrInvalidDimension", dim, err)
		}
		if b != nil {
			t.Fatalf("NewBoard(%d) returned a board", dim)
		}
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	b := mustBoard(t, 5)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Get(%d,%d) did not panic", pos[0], pos[1])
				}
			}()
			b.Get(pos[0], pos[1])
		}()
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	b := mustBoard(t, 5)
	if !b.Toggle(2, 3) {
		t.Fatal("first toggle should make the cell alive")
	}
	if b.Toggle(2, 3) {
		t.Fatal("second toggle should make the cell dead")
	}
	if b.Population() != 0 {
		t.Fatalf("population = %d after double toggle", b.Population())
	}
}

func TestLiveNeighborsHardEdges(t *testing.T) {
	full := mustBoard(t, 5)
	for i := range full.cells {
		full.cells[i] = true
	}
	cases := []struct {
		name     string
		row, col int
		want     int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 0, 4, 3},
		{"bottom-left corner", 4, 0, 3},
		{"bottom-right corner", 4, 4, 3},
		{"top edge", 0, 2, 5},
		{"left edge", 2, 0, 5},
		{"interior", 2, 2, 8},
	}
	for _, tc := range cases {
		if got := full.LiveNeighbors(tc.row, tc.col); got != tc.want {
			t.Errorf("%s: LiveNeighbors(%d,%d) = %d, want %d", tc.name, tc.row, tc.col, got, tc.want)
		}
	}
}

func TestLiveNeighborsDoesNotWrap(t *testing.T) {
	b := boardFrom(t,
		"....#",
		".....",
		".....",
		".....",
		"#...#",
	)
	if got := b.LiveNeighbors(0, 0); got != 0 {
		t.Fatalf("corner sees %d neighbours across the edge, want 0", got)
	}
	if got := b.LiveNeighbors(4, 4); got != 0 {
		t.Fatalf("corner (4,4) sees %d neighbours, want 0", got)
	}
}

func TestNextBlankIsFixedPoint(t *testing.T) {
	for _, dim := range []int{1, 3, 16, 59} {
		b := mustBoard(t, dim)
		if next := b.Next(); next.Population() != 0 || next.Dim() != dim {
			t.Fatalf("dim %d: blank board did not stay blank", dim)
		}
	}
}

func TestNextUnderpopulation(t *testing.T) {
	b := mustBoard(t, 5)
	b.Set(2, 2, true)
	if b.Next().Population() != 0 {
		t.Fatal("lonely cell should die")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	b := boardFrom(t,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	vertical := boardFrom(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	gen1 := b.Next()
	if !gen1.Equal(vertical) {
		t.Fatalf("generation 1:\n%s\nwant\n%s", gen1, vertical)
	}
	gen2 := gen1.Next()
	if !gen2.Equal(b) {
		t.Fatalf("generation 2:\n%s\nwant\n%s", gen2, b)
	}
}

func TestNextBlockIsStill(t *testing.T) {
	b := boardFrom(t,
		"....",
		".##.",
		".##.",
		"....",
	)
	if next := b.Next(); !next.Equal(b) {
		t.Fatalf("block changed:\n%s", next)
	}
}

func TestNextDoesNotMutateReceiver(t *testing.T) {
	b := boardFrom(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	before := b.Clone()
	next := b.Next()
	if !b.Equal(before) {
		t.Fatal("Next modified the current generation")
	}
	if next == b {
		t.Fatal("Next must return a new board")
	}
}

func TestNextOvercrowding(t *testing.T) {
	b := boardFrom(t,
		"###",
		"###",
		"###",
	)
	want := boardFrom(t,
		"#.#",
		"...",
		"#.#",
	)
	if next := b.Next(); !next.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", next, want)
	}
}

func TestBlankAndEqual(t *testing.T) {
	b := boardFrom(t, "#.", ".#")
	blank := b.Blank()
	if blank.Dim() != 2 || blank.Population() != 0 {
		t.Fatal("Blank must be an empty board of the same size")
	}
	if b.Equal(blank) {
		t.Fatal("boards with different cells compared equal")
	}
	if b.Equal(mustBoard(t, 3)) {
		t.Fatal("boards with different dims compared equal")
	}
	if !b.Equal(b.Clone()) {
		t.Fatal("clone should equal original")
	}
}

func TestString(t *testing.T) {
	b := boardFrom(t, "#.", ".#")
	want := strings.Join([]string{"#.", ".#", ""}, "\n")
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
