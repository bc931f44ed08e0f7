package core

// Size describes the dimensions of a board.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells a board of this size holds.
func (s Size) Cells() int { return s.Rows * s.Cols }
