package generator

import (
	"math/bits"
	"math/rand"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

// gridgenStepLimit bounds one filling attempt. Running out of steps is a
// normal outcome on unlucky orderings; the caller retries with fresh
// randomness.
const gridgenStepLimit = 100000

// gridgen fills a complete valid grid by randomized backtracking. It is
// deliberately lighter-weight than the grading solver: per-region
// used-digit bitmasks only, no candidate cube.
type gridgen struct {
	cr, area  int
	layout    *region.Layout
	diag      bool
	grid      domain.Grid
	row, col  []uint32
	blk       []uint32
	dg        [2]uint32
	priority  []int // random per-cell tie-break, fixed up front
	steps     int
	exhausted bool
	rng       *rand.Rand
}

// fillGrid produces a random complete valid grid for the given shape, or
// ok=false when the step limit ran out.
func fillGrid(p domain.Params, layout *region.Layout, rng *rand.Rand) (domain.Grid, bool) {
	cr := layout.CR
	g := &gridgen{
		cr:       cr,
		area:     cr * cr,
		layout:   layout,
		diag:     p.XType,
		grid:     make(domain.Grid, cr*cr),
		row:      make([]uint32, cr),
		col:      make([]uint32, cr),
		blk:      make([]uint32, cr),
		priority: rng.Perm(cr * cr),
		rng:      rng,
	}

	// Relabelling digits is a symmetry of the puzzle, so the first row can
	// be fixed to a random permutation for free.
	perm := rng.Perm(cr)
	for x := 0; x < cr; x++ {
		g.put(x, uint8(perm[x]+1))
	}

	if !g.fill() {
		return nil, false
	}
	return g.grid, true
}

func (g *gridgen) put(cell int, n uint8) {
	bit := uint32(1) << (n - 1)
	g.grid[cell] = n
	g.row[cell/g.cr] |= bit
	g.col[cell%g.cr] |= bit
	g.blk[g.layout.CellBlock[cell]] |= bit
	if g.diag {
		x, y := cell%g.cr, cell/g.cr
		if x == y {
			g.dg[0] |= bit
		}
		if x+y == g.cr-1 {
			g.dg[1] |= bit
		}
	}
}

func (g *gridgen) unput(cell int, n uint8) {
	bit := uint32(1) << (n - 1)
	g.grid[cell] = 0
	g.row[cell/g.cr] &^= bit
	g.col[cell%g.cr] &^= bit
	g.blk[g.layout.CellBlock[cell]] &^= bit
	if g.diag {
		x, y := cell%g.cr, cell/g.cr
		if x == y {
			g.dg[0] &^= bit
		}
		if x+y == g.cr-1 {
			g.dg[1] &^= bit
		}
	}
}

func (g *gridgen) usedMask(cell int) uint32 {
	m := g.row[cell/g.cr] | g.col[cell%g.cr] | g.blk[g.layout.CellBlock[cell]]
	if g.diag {
		x, y := cell%g.cr, cell/g.cr
		if x == y {
			m |= g.dg[0]
		}
		if x+y == g.cr-1 {
			m |= g.dg[1]
		}
	}
	return m
}

func (g *gridgen) fill() bool {
	g.steps++
	if g.steps > gridgenStepLimit {
		g.exhausted = true
		return false
	}

	// Most-constrained cell first, random priority breaking ties, so the
	// search order is reproducible per seed.
	best, bestCount := -1, g.cr+1
	full := uint32(1)<<g.cr - 1
	for cell := 0; cell < g.area; cell++ {
		if g.grid[cell] != 0 {
			continue
		}
		free := full &^ g.usedMask(cell)
		count := bits.OnesCount32(free)
		if count == 0 {
			return false
		}
		if count < bestCount || (count == bestCount && g.priority[cell] < g.priority[best]) {
			best, bestCount = cell, count
		}
	}
	if best == -1 {
		return true
	}

	digits := make([]uint8, 0, bestCount)
	free := full &^ g.usedMask(best)
	for n := uint8(1); n <= uint8(g.cr); n++ {
		if free&(1<<(n-1)) != 0 {
			digits = append(digits, n)
		}
	}
	g.rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	for _, n := range digits {
		g.put(best, n)
		if g.fill() {
			return true
		}
		g.unput(best, n)
		if g.exhausted {
			return false
		}
	}
	return false
}
