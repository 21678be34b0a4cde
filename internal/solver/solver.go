package solver

import (
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

// Problem is one solving task: a clue grid plus the region model it must
// satisfy. The solver never mutates the input; all scratch state is
// allocated per call and released on return.
type Problem struct {
	Params domain.Params
	Layout *region.Layout
	Cages  *region.Cages // nil unless killer
	Grid   domain.Grid   // clues, 0 = empty
}

// ghostCage is a derived cage implied by a row/column/block whose clued
// cages cover it incompletely: the uncovered cells must sum to the region
// total minus the covered clues.
type ghostCage struct {
	cells []int
	sum   int
}

// usage is the candidate store for one solving attempt: a cube of
// per-cell, per-digit feasibility flags plus per-region "digit placed"
// flags. It is allocated fresh for every attempt and never outlives it.
type usage struct {
	cr     int
	layout *region.Layout
	diag   bool
	diags  [2][]int
	cages  *region.Cages
	ghosts []ghostCage

	// cube[cell*cr+n-1] is true while digit n remains feasible for cell.
	cube []bool
	grid domain.Grid

	row, col, blk []bool // [unit*cr+n-1] true once n is placed in the unit
	dg            []bool // two diagonals, same indexing
}

func (u *usage) idx(cell int, n uint8) int { return cell*u.cr + int(n) - 1 }

func (u *usage) possible(cell int, n uint8) bool { return u.cube[u.idx(cell, n)] }

// newUsage builds the candidate store and enters the clue grid. It returns
// ok=false if a clue contradicts an earlier one, which grades Impossible
// rather than being a caller error.
func newUsage(p *Problem) (*usage, bool) {
	cr := p.Layout.CR
	u := &usage{
		cr:     cr,
		layout: p.Layout,
		diag:   p.Params.XType,
		cages:  p.Cages,
		cube:   make([]bool, cr*cr*cr),
		grid:   make(domain.Grid, cr*cr),
		row:    make([]bool, cr*cr),
		col:    make([]bool, cr*cr),
		blk:    make([]bool, cr*cr),
	}
	for i := range u.cube {
		u.cube[i] = true
	}
	if u.diag {
		u.diags = region.Diagonals(cr)
		u.dg = make([]bool, 2*cr)
	}
	if u.cages != nil {
		u.ghosts = deriveGhosts(u.layout, u.cages)
	}
	for cell, n := range p.Grid {
		if n == 0 {
			continue
		}
		if int(n) > cr || !u.possible(cell, n) {
			return nil, false
		}
		u.place(cell, n)
	}
	return u, true
}

// place commits digit n to a cell and propagates the eliminations to every
// region containing it. The caller must have checked feasibility; placing
// an infeasible digit is a programming error.
func (u *usage) place(cell int, n uint8) {
	cr := u.cr
	if !u.possible(cell, n) {
		panic("solver: place called on an infeasible assignment")
	}
	x, y := cell%cr, cell/cr

	// This cell takes no other digit.
	for i := uint8(1); i <= uint8(cr); i++ {
		if i != n {
			u.cube[u.idx(cell, i)] = false
		}
	}
	// No other cell in a shared region takes this digit.
	for i := 0; i < cr; i++ {
		if rc := y*cr + i; rc != cell {
			u.cube[u.idx(rc, n)] = false
		}
		if cc := i*cr + x; cc != cell {
			u.cube[u.idx(cc, n)] = false
		}
	}
	b := u.layout.CellBlock[cell]
	for _, bc := range u.layout.BlockCells[b] {
		if bc != cell {
			u.cube[u.idx(bc, n)] = false
		}
	}
	if u.diag {
		for d := 0; d < 2; d++ {
			if !onDiag(d, x, y, cr) {
				continue
			}
			for _, dc := range u.diags[d] {
				if dc != cell {
					u.cube[u.idx(dc, n)] = false
				}
			}
			u.dg[d*cr+int(n)-1] = true
		}
	}
	if u.cages != nil {
		for _, kc := range u.cages.Cells[u.cages.CellCage[cell]] {
			if kc != cell {
				u.cube[u.idx(kc, n)] = false
			}
		}
	}

	u.grid[cell] = n
	u.row[y*cr+int(n)-1] = true
	u.col[x*cr+int(n)-1] = true
	u.blk[b*cr+int(n)-1] = true
}

func onDiag(d, x, y, cr int) bool {
	if d == 0 {
		return x == y
	}
	return x+y == cr-1
}

// elim inspects one line of the cube (all positions a digit can take in a
// region, or all digits a cell can take). Exactly one survivor is placed;
// zero survivors is a contradiction.
func (u *usage) elim(positions []int) int {
	count, fpos := 0, -1
	for _, p := range positions {
		if u.cube[p] {
			fpos = p
			count++
		}
	}
	if count == 0 {
		return -1
	}
	if count > 1 {
		return 0
	}
	cell := fpos / u.cr
	n := uint8(fpos%u.cr) + 1
	if u.grid[cell] != 0 {
		return 0
	}
	u.place(cell, n)
	return 1
}

// unit iteration helpers; each writes cube positions into buf.

func (u *usage) rowPositions(buf []int, y int, n uint8) []int {
	buf = buf[:0]
	for x := 0; x < u.cr; x++ {
		buf = append(buf, u.idx(y*u.cr+x, n))
	}
	return buf
}

func (u *usage) colPositions(buf []int, x int, n uint8) []int {
	buf = buf[:0]
	for y := 0; y < u.cr; y++ {
		buf = append(buf, u.idx(y*u.cr+x, n))
	}
	return buf
}

func (u *usage) cellPositions(buf []int, cell int) []int {
	buf = buf[:0]
	for n := uint8(1); n <= uint8(u.cr); n++ {
		buf = append(buf, u.idx(cell, n))
	}
	return buf
}

func (u *usage) listPositions(buf []int, cells []int, n uint8) []int {
	buf = buf[:0]
	for _, c := range cells {
		buf = append(buf, u.idx(c, n))
	}
	return buf
}

// candMask returns the bitmask of candidate digits for an empty cell
// (bit n-1 for digit n).
func (u *usage) candMask(cell int) uint64 {
	var m uint64
	base := cell * u.cr
	for i := 0; i < u.cr; i++ {
		if u.cube[base+i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// sharesUnit reports whether two distinct cells lie in a common row,
// column, block or (when enabled) diagonal.
func (u *usage) sharesUnit(a, b int) bool {
	cr := u.cr
	ax, ay := a%cr, a/cr
	bx, by := b%cr, b/cr
	if ax == bx || ay == by {
		return true
	}
	if u.layout.CellBlock[a] == u.layout.CellBlock[b] {
		return true
	}
	if u.diag {
		for d := 0; d < 2; d++ {
			if onDiag(d, ax, ay, cr) && onDiag(d, bx, by, cr) {
				return true
			}
		}
	}
	return false
}
