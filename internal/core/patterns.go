package core

// shape lists live cells as (row, col) offsets from the top-left corner of
// its bounding box.
type shape [][2]int

var (
	blinker = shape{{0, 0}, {0, 1}, {0, 2}}
	glider  = shape{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	block   = shape{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

func (s shape) size() (h, w int) {
	for _, p := range s {
		h = max(h, p[0]+1)
		w = max(w, p[1]+1)
	}
	return h, w
}

// stamp places the shape with its top-left corner at (row, col). Cells that
// fall off the board are dropped.
func (s shape) stamp(b *Board, row, col int) {
	for _, p := range s {
		r, c := row+p[0], col+p[1]
		if b.Contains(r, c) {
			b.Set(r, c, true)
		}
	}
}

func centered(s shape) Pattern {
	return func(b *Board, _ *RNG) {
		h, w := s.size()
		s.stamp(b, (b.Dim()-h)/2, (b.Dim()-w)/2)
	}
}

// Seed applies the named pattern on top of the cells already in b. An empty
// name is a no-op and an unknown name reports false.
func Seed(b *Board, name string, seed int64) bool {
	if name == "" {
		return true
	}
	p, ok := patterns[name]
	if !ok {
		return false
	}
	p(b, NewRNG(seed))
	return true
}

func init() {
	RegisterPattern("blinker", centered(blinker))
	RegisterPattern("glider", func(b *Board, _ *RNG) { glider.stamp(b, 1, 1) })
	RegisterPattern("block", centered(block))
	RegisterPattern("random", func(b *Board, rng *RNG) { FillBinary(rng, b) })
}
