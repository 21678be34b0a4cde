package region

import "fmt"

// Cages is a partition of the grid into sum-clue groups for killer
// puzzles. Unlike blocks, cages need not be connected for solving purposes
// and do not cover every digit; each carries a target sum instead. Cages
// are mutable during cage generation (merge/split) but every mutation
// preserves the partition-of-all-cells invariant.
type Cages struct {
	CR       int
	CellCage []int   // cell index -> cage id
	Cells    [][]int // cage id -> member cells, ascending
	Sums     []int   // cage id -> clue sum (0 while unknown)
}

// NewCages builds a cage partition from a cell map and validates the
// partition invariant. Cage sizes must be 1..cr; connectivity is not
// required.
func NewCages(cr int, cellCage []int, sums []int) (*Cages, error) {
	if len(cellCage) != cr*cr {
		return nil, fmt.Errorf("cages: got %d cells, want %d", len(cellCage), cr*cr)
	}
	n := 0
	for _, id := range cellCage {
		if id < 0 {
			return nil, fmt.Errorf("cages: negative cage id %d", id)
		}
		if id+1 > n {
			n = id + 1
		}
	}
	c := &Cages{
		CR:       cr,
		CellCage: cellCage,
		Cells:    make([][]int, n),
		Sums:     make([]int, n),
	}
	for i, id := range cellCage {
		c.Cells[id] = append(c.Cells[id], i)
	}
	for id, cells := range c.Cells {
		if len(cells) == 0 {
			return nil, fmt.Errorf("cages: cage %d is empty", id)
		}
		if len(cells) > cr {
			return nil, fmt.Errorf("cages: cage %d has %d cells, max %d", id, len(cells), cr)
		}
	}
	if sums != nil {
		if len(sums) != n {
			return nil, fmt.Errorf("cages: got %d sums for %d cages", len(sums), n)
		}
		copy(c.Sums, sums)
	}
	return c, nil
}

// NumCages returns the number of cages.
func (c *Cages) NumCages() int { return len(c.Cells) }

// Clone returns an independent copy; the clone may be mutated freely.
func (c *Cages) Clone() *Cages {
	out := &Cages{
		CR:       c.CR,
		CellCage: append([]int(nil), c.CellCage...),
		Cells:    make([][]int, len(c.Cells)),
		Sums:     append([]int(nil), c.Sums...),
	}
	for i, cells := range c.Cells {
		out.Cells[i] = append([]int(nil), cells...)
	}
	return out
}

// Adjacent reports whether cages a and b share an orthogonal grid edge.
func (c *Cages) Adjacent(a, b int) bool {
	cr := c.CR
	for _, cell := range c.Cells[a] {
		x := cell % cr
		for _, nb := range neighborCells(cell, x, cr) {
			if c.CellCage[nb] == b {
				return true
			}
		}
	}
	return false
}

// Merge folds cage b into cage a, summing their clues, and renumbers the
// remaining cages densely. It panics if the merged cage would exceed cr
// cells; callers check sizes first.
func (c *Cages) Merge(a, b int) {
	if a == b {
		panic("cages: merging a cage with itself")
	}
	if len(c.Cells[a])+len(c.Cells[b]) > c.CR {
		panic("cages: merge exceeds maximum cage size")
	}
	c.Cells[a] = sortedUnion(c.Cells[a], c.Cells[b])
	c.Sums[a] += c.Sums[b]
	for _, cell := range c.Cells[b] {
		c.CellCage[cell] = a
	}
	last := len(c.Cells) - 1
	if b != last {
		c.Cells[b] = c.Cells[last]
		c.Sums[b] = c.Sums[last]
		for _, cell := range c.Cells[b] {
			c.CellCage[cell] = b
		}
	}
	c.Cells = c.Cells[:last]
	c.Sums = c.Sums[:last]
}

func sortedUnion(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	return out
}
