package solver

import (
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

// regionTotal is the sum of one full region, 1+2+...+cr.
func regionTotal(cr int) int { return cr * (cr + 1) / 2 }

// deriveGhosts finds derived cages: for every row, column and block whose
// clued cages are only partially contained in it, the uncovered cells form
// an extra cage whose sum is the region total minus the contained clue
// sums.
func deriveGhosts(layout *region.Layout, cages *region.Cages) []ghostCage {
	cr := layout.CR
	var units [][]int
	for y := 0; y < cr; y++ {
		unit := make([]int, cr)
		for x := 0; x < cr; x++ {
			unit[x] = y*cr + x
		}
		units = append(units, unit)
	}
	for x := 0; x < cr; x++ {
		unit := make([]int, cr)
		for y := 0; y < cr; y++ {
			unit[y] = y*cr + x
		}
		units = append(units, unit)
	}
	units = append(units, layout.BlockCells...)

	var ghosts []ghostCage
	for _, unit := range units {
		in := make(map[int]bool, cr)
		for _, c := range unit {
			in[c] = true
		}
		covered := make(map[int]bool, cr)
		sum := regionTotal(cr)
		for k := 0; k < cages.NumCages(); k++ {
			inside := true
			for _, c := range cages.Cells[k] {
				if !in[c] {
					inside = false
					break
				}
			}
			if !inside {
				continue
			}
			sum -= cages.Sums[k]
			for _, c := range cages.Cells[k] {
				covered[c] = true
			}
		}
		var uncovered []int
		for _, c := range unit {
			if !covered[c] {
				uncovered = append(uncovered, c)
			}
		}
		if len(uncovered) == 0 || len(uncovered) == cr {
			continue
		}
		ghosts = append(ghosts, ghostCage{cells: uncovered, sum: sum})
	}
	return ghosts
}

// cageState summarizes a cage against the current grid: which cells remain
// free and what they must still sum to.
func (u *usage) cageState(cells []int, sum int) (free []int, need int, ok bool) {
	need = sum
	for _, c := range cells {
		if v := u.grid[c]; v != 0 {
			need -= int(v)
		} else {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return nil, 0, need == 0
	}
	return free, need, true
}

// killerSingles places the last free cell of any cage whose remainder is
// forced, clued cages first and then derived ones. Returns (-1, _) on
// contradiction, (1, level) on progress.
func (u *usage) killerSingles(maxKDiff domain.KillerDifficulty) (int, domain.KillerDifficulty) {
	for k := 0; k < u.cages.NumCages(); k++ {
		switch u.fillLastCell(u.cages.Cells[k], u.cages.Sums[k]) {
		case -1:
			return -1, domain.CageSingles
		case 1:
			return 1, domain.CageSingles
		}
	}
	if maxKDiff >= domain.CageGhosts {
		for _, g := range u.ghosts {
			switch u.fillLastCell(g.cells, g.sum) {
			case -1:
				return -1, domain.CageGhosts
			case 1:
				return 1, domain.CageGhosts
			}
		}
	}
	return 0, domain.CageSingles
}

func (u *usage) fillLastCell(cells []int, sum int) int {
	free, need, ok := u.cageState(cells, sum)
	if !ok {
		return -1
	}
	if len(free) != 1 {
		return 0
	}
	cell := free[0]
	if need < 1 || need > u.cr || !u.possible(cell, uint8(need)) {
		return -1
	}
	u.place(cell, uint8(need))
	return 1
}

// killerMinMax eliminates a candidate whenever no choice of the cage's
// other free cells can bring the sum back to the clue, using per-cell
// minimum and maximum remaining candidates.
func (u *usage) killerMinMax() int {
	progress := 0
	apply := func(cells []int, sum int) int {
		free, need, ok := u.cageState(cells, sum)
		if !ok {
			return -1
		}
		if len(free) < 2 {
			return 0
		}
		mins := make([]int, len(free))
		maxs := make([]int, len(free))
		minSum, maxSum := 0, 0
		for i, c := range free {
			lo, hi := 0, 0
			for n := 1; n <= u.cr; n++ {
				if u.cube[c*u.cr+n-1] {
					if lo == 0 {
						lo = n
					}
					hi = n
				}
			}
			if lo == 0 {
				return -1
			}
			mins[i], maxs[i] = lo, hi
			minSum += lo
			maxSum += hi
		}
		if minSum > need || maxSum < need {
			return -1
		}
		changed := 0
		for i, c := range free {
			restMin := minSum - mins[i]
			restMax := maxSum - maxs[i]
			for n := 1; n <= u.cr; n++ {
				if !u.cube[c*u.cr+n-1] {
					continue
				}
				if n+restMin > need || n+restMax < need {
					u.cube[c*u.cr+n-1] = false
					changed = 1
				}
			}
		}
		return changed
	}
	for k := 0; k < u.cages.NumCages(); k++ {
		switch apply(u.cages.Cells[k], u.cages.Sums[k]) {
		case -1:
			return -1
		case 1:
			progress = 1
		}
	}
	for _, g := range u.ghosts {
		switch apply(g.cells, g.sum) {
		case -1:
			return -1
		case 1:
			progress = 1
		}
	}
	return progress
}

// killerSums prunes small cages exhaustively: for a cage with two to four
// free cells lying inside one region, enumerate every assignment of
// distinct feasible digits reaching the needed sum and drop any candidate
// that appears in none.
func (u *usage) killerSums(sc *scratch) int {
	progress := 0
	apply := func(cells []int, sum int) int {
		free, need, ok := u.cageState(cells, sum)
		if !ok {
			return -1
		}
		if len(free) < 2 || len(free) > 4 || !u.sameRegion(free) {
			return 0
		}
		feasible := make([]uint64, len(free))
		var assign func(i int, used uint64, left int) bool
		found := false
		assign = func(i int, used uint64, left int) bool {
			if i == len(free) {
				if left != 0 {
					return false
				}
				found = true
				return true
			}
			any := false
			for n := 1; n <= u.cr; n++ {
				bit := uint64(1) << uint(n-1)
				if used&bit != 0 || !u.cube[free[i]*u.cr+n-1] || left-n < 0 {
					continue
				}
				if assign(i+1, used|bit, left-n) {
					feasible[i] |= bit
					any = true
				}
			}
			return any
		}
		assign(0, 0, need)
		if !found {
			return -1
		}
		changed := 0
		for i, c := range free {
			for n := 1; n <= u.cr; n++ {
				bit := uint64(1) << uint(n-1)
				if u.cube[c*u.cr+n-1] && feasible[i]&bit == 0 {
					u.cube[c*u.cr+n-1] = false
					changed = 1
				}
			}
		}
		return changed
	}
	for k := 0; k < u.cages.NumCages(); k++ {
		switch apply(u.cages.Cells[k], u.cages.Sums[k]) {
		case -1:
			return -1
		case 1:
			progress = 1
		}
	}
	for _, g := range u.ghosts {
		switch apply(g.cells, g.sum) {
		case -1:
			return -1
		case 1:
			progress = 1
		}
	}
	return progress
}

// sameRegion reports whether all cells share one row, column or block, so
// that their digits are necessarily distinct.
func (u *usage) sameRegion(cells []int) bool {
	cr := u.cr
	sameRow, sameCol, sameBlk := true, true, true
	for _, c := range cells[1:] {
		if c/cr != cells[0]/cr {
			sameRow = false
		}
		if c%cr != cells[0]%cr {
			sameCol = false
		}
		if u.layout.CellBlock[c] != u.layout.CellBlock[cells[0]] {
			sameBlk = false
		}
	}
	return sameRow || sameCol || sameBlk
}
