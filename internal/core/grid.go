package core

// Grid stores a fixed-size board of binary cells in row-major order.
//
// Rows are indexed by i and columns by k. Callers treat a Grid as a value:
// operations that change cells return a new Grid so a snapshot handed to a
// renderer is never written to afterwards.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions are raised to 1; callers building from user input validate the
// size first (see config.Config.Validate).
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice. It must be treated as read-only.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (i, k).
func (g *Grid) Index(i, k int) int { return i*g.Cols + k }

// InBounds reports whether (i, k) lies on the board.
func (g *Grid) InBounds(i, k int) bool {
	return i >= 0 && i < g.Rows && k >= 0 && k < g.Cols
}

// At returns the cell value at (i, k). Coordinates off the board read as dead.
func (g *Grid) At(i, k int) uint8 {
	if !g.InBounds(i, k) {
		return 0
	}
	return g.data[g.Index(i, k)]
}

// Alive reports whether the cell at (i, k) is alive.
func (g *Grid) Alive(i, k int) bool { return g.At(i, k) == 1 }

// Set writes a cell in place. Only the owner of a freshly built grid may call
// it; shared grids are replaced, not written.
func (g *Grid) Set(i, k int, v uint8) {
	if !g.InBounds(i, k) {
		return
	}
	if v != 0 {
		v = 1
	}
	g.data[g.Index(i, k)] = v
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}
