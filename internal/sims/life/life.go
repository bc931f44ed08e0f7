// Package life implements Conway's Game of Life on a bounded board.
//
// Every function here is pure: inputs are never written and each result is a
// freshly allocated grid, so callers can swap whole boards between ticks.
package life

import (
	"math/rand/v2"

	"lifeboard/internal/core"
)

// AliveProbability is the chance that Random marks a cell alive.
const AliveProbability = 0.2

// offsets lists the Moore neighbourhood as (di, dk) pairs.
var offsets = [8][2]int{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1}, {1, 0},
	{-1, 1}, {-1, -1}, {-1, 0},
}

// Rule returns the next value of a cell given its current value and the
// number of live neighbours.
func Rule(cur uint8, neighbors int) uint8 {
	switch {
	case neighbors < 2 || neighbors > 3:
		return 0
	case cur == 0 && neighbors == 3:
		return 1
	default:
		return cur
	}
}

// Neighbors counts live cells around (i, k). Cells past the edge are absent,
// not wrapped.
func Neighbors(g *core.Grid, i, k int) int {
	n := 0
	for _, o := range offsets {
		n += int(g.At(i+o[0], k+o[1]))
	}
	return n
}

// Next computes the following generation.
func Next(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Rows, g.Cols)
	out := next.Cells()
	for i := 0; i < g.Rows; i++ {
		for k := 0; k < g.Cols; k++ {
			out[next.Index(i, k)] = Rule(g.At(i, k), Neighbors(g, i, k))
		}
	}
	return next
}

// Toggle returns a copy of g with cell (i, k) flipped. Coordinates off the
// board yield an unchanged copy.
func Toggle(g *core.Grid, i, k int) *core.Grid {
	next := g.Clone()
	if !g.InBounds(i, k) {
		return next
	}
	next.Set(i, k, 1-g.At(i, k))
	return next
}

// Empty returns an all-dead board of the given size.
func Empty(rows, cols int) *core.Grid {
	return core.NewGrid(rows, cols)
}

// Random returns a board where each cell is independently alive with
// probability p.
func Random(rows, cols int, p float64, r *rand.Rand) *core.Grid {
	g := core.NewGrid(rows, cols)
	core.FillBernoulli(r, g.Cells(), p)
	return g
}
