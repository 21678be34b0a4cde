package solver

import (
	"fmt"

	"svw.info/latinsq/internal/domain"
)

// NextHint finds the cheapest single deduction available in the current
// position: a digit with only one feasible cell in some region, or a cell
// with only one feasible digit. It reports ok=false when the grid is full,
// contradictory, or no single exists (the position needs a harder
// technique).
func NextHint(p *Problem) (domain.Hint, bool) {
	u, ok := newUsage(p)
	if !ok {
		return domain.Hint{}, false
	}
	cr := u.cr

	for b := 0; b < cr; b++ {
		for n := uint8(1); n <= uint8(cr); n++ {
			if cell, ok := u.soleCell(u.layout.BlockCells[b], n); ok {
				return u.hintAt(cell, n, fmt.Sprintf("%d has only one place left in its block", n), domain.Trivial), true
			}
		}
	}
	line := make([]int, cr)
	for i := 0; i < cr; i++ {
		for n := uint8(1); n <= uint8(cr); n++ {
			for x := 0; x < cr; x++ {
				line[x] = i*cr + x
			}
			if cell, ok := u.soleCell(line, n); ok {
				return u.hintAt(cell, n, fmt.Sprintf("%d has only one place left in its row", n), domain.Basic), true
			}
			for y := 0; y < cr; y++ {
				line[y] = y*cr + i
			}
			if cell, ok := u.soleCell(line, n); ok {
				return u.hintAt(cell, n, fmt.Sprintf("%d has only one place left in its column", n), domain.Basic), true
			}
		}
	}
	if u.diag {
		for d := 0; d < 2; d++ {
			for n := uint8(1); n <= uint8(cr); n++ {
				if cell, ok := u.soleCell(u.diags[d], n); ok {
					return u.hintAt(cell, n, fmt.Sprintf("%d has only one place left on its diagonal", n), domain.Basic), true
				}
			}
		}
	}
	for cell := 0; cell < cr*cr; cell++ {
		if u.grid[cell] != 0 {
			continue
		}
		var only uint8
		count := 0
		for n := uint8(1); n <= uint8(cr); n++ {
			if u.possible(cell, n) {
				only = n
				count++
			}
		}
		if count == 1 {
			return u.hintAt(cell, only, fmt.Sprintf("only %d fits in this square", only), domain.Basic), true
		}
	}
	return domain.Hint{}, false
}

// soleCell returns the unique empty cell in cells where n is still
// feasible, if the digit is unplaced there and exactly one such cell
// exists.
func (u *usage) soleCell(cells []int, n uint8) (int, bool) {
	found, count := -1, 0
	for _, c := range cells {
		if u.grid[c] == n {
			return 0, false
		}
		if u.grid[c] == 0 && u.possible(c, n) {
			found = c
			count++
		}
	}
	return found, count == 1
}

func (u *usage) hintAt(cell int, n uint8, msg string, level domain.Difficulty) domain.Hint {
	return domain.Hint{
		Message: msg,
		Cell:    domain.CellCoord{X: cell % u.cr, Y: cell / u.cr},
		Digit:   n,
		Level:   level,
	}
}
