package solver

// intersect performs pointing/claiming eliminations between each block and
// every row, column or diagonal it meets in two or more cells: if a
// digit's candidates in one of the two regions all lie in the overlap, the
// digit cannot appear in the other region outside the overlap.
func (u *usage) intersect(sc *scratch) int {
	cr := u.cr
	if sc.lines == nil {
		for y := 0; y < cr; y++ {
			line := make([]int, cr)
			for x := 0; x < cr; x++ {
				line[x] = y*cr + x
			}
			sc.lines = append(sc.lines, line)
		}
		for x := 0; x < cr; x++ {
			line := make([]int, cr)
			for y := 0; y < cr; y++ {
				line[y] = y*cr + x
			}
			sc.lines = append(sc.lines, line)
		}
		if u.diag {
			sc.lines = append(sc.lines, u.diags[0], u.diags[1])
		}
	}

	for b := 0; b < cr; b++ {
		block := u.layout.BlockCells[b]
		for _, line := range sc.lines {
			overlap := sc.overlapCells(block, line)
			if len(overlap) < 2 {
				continue
			}
			for _, c := range overlap {
				sc.inCells[c] = true
			}
			progress := 0
			for n := uint8(1); n <= uint8(cr); n++ {
				if u.blk[b*cr+int(n)-1] {
					continue
				}
				if u.pointing(sc, block, line, n) == 1 || u.pointing(sc, line, block, n) == 1 {
					progress = 1
					break
				}
			}
			for _, c := range overlap {
				sc.inCells[c] = false
			}
			if progress == 1 {
				return 1
			}
		}
	}
	return 0
}

// overlapCells collects the cells common to a and b into sc.overlap. The
// sc.inCells marks are cleared again before returning.
func (sc *scratch) overlapCells(a, b []int) []int {
	for _, c := range a {
		sc.inCells[c] = true
	}
	sc.overlap = sc.overlap[:0]
	for _, c := range b {
		if sc.inCells[c] {
			sc.overlap = append(sc.overlap, c)
		}
	}
	for _, c := range a {
		sc.inCells[c] = false
	}
	return sc.overlap
}

// pointing eliminates n from target outside the overlap (marked in
// sc.inCells by the caller) when every candidate position for n in source
// lies inside the overlap.
func (u *usage) pointing(sc *scratch, source, target []int, n uint8) int {
	any := false
	for _, c := range source {
		if u.possible(c, n) {
			if !sc.inCells[c] {
				return 0
			}
			any = true
		}
	}
	if !any {
		return 0
	}
	progress := 0
	for _, c := range target {
		if !sc.inCells[c] && u.possible(c, n) {
			u.cube[u.idx(c, n)] = false
			progress = 1
		}
	}
	return progress
}
