package solver

import "math/bits"

// setElim looks for naked/hidden subsets within one region: m empty cells
// whose candidate digits union to exactly m digits pin those digits to
// those cells, eliminating them elsewhere in the region. Hidden subsets
// are the complements of naked ones in the same cell-by-digit matrix, so
// one search covers both. A subset whose union is smaller than itself is a
// contradiction.
func (u *usage) setElim(sc *scratch) int {
	cr := u.cr

	run := func(cells []int) int {
		sc.setCells = sc.setCells[:0]
		sc.setMasks = sc.setMasks[:0]
		for _, c := range cells {
			if u.grid[c] != 0 {
				continue
			}
			m := u.candMask(c)
			if m == 0 {
				return -1
			}
			sc.setCells = append(sc.setCells, c)
			sc.setMasks = append(sc.setMasks, m)
		}
		k := len(sc.setCells)
		if k < 3 {
			// With two empty cells any naked pair covers the whole
			// remainder; nothing to eliminate from.
			return 0
		}
		return u.searchSets(sc, k)
	}

	for b := 0; b < cr; b++ {
		if r := run(u.layout.BlockCells[b]); r != 0 {
			return r
		}
	}
	buf := make([]int, cr)
	for y := 0; y < cr; y++ {
		for x := 0; x < cr; x++ {
			buf[x] = y*cr + x
		}
		if r := run(buf); r != 0 {
			return r
		}
	}
	for x := 0; x < cr; x++ {
		for y := 0; y < cr; y++ {
			buf[y] = y*cr + x
		}
		if r := run(buf); r != 0 {
			return r
		}
	}
	if u.diag {
		for d := 0; d < 2; d++ {
			if r := run(u.diags[d]); r != 0 {
				return r
			}
		}
	}
	return 0
}

// searchSets enumerates subsets of the k empty cells depth-first, pruning
// branches whose digit union already exceeds the largest useful subset
// size. Finds the deduction, applies it and reports progress; -1 means a
// subset had fewer digits than cells.
func (u *usage) searchSets(sc *scratch, k int) int {
	var dfs func(i, m int, union uint64) int
	dfs = func(i, m int, union uint64) int {
		pop := bits.OnesCount64(union)
		if m > 0 && pop < m {
			return -1
		}
		if m >= 2 && pop == m && m < k {
			if u.applySet(sc, union) == 1 {
				return 1
			}
		}
		if i == k || pop > k-1 {
			return 0
		}
		// Include cell i.
		if r := dfs(i+1, m+1, union|sc.setMasks[i]); r != 0 {
			return r
		}
		// Exclude cell i.
		return dfs(i+1, m, union)
	}
	return dfs(0, 0, 0)
}

// applySet removes the set's digits from every empty cell of the region
// whose candidates are not wholly inside the set.
func (u *usage) applySet(sc *scratch, union uint64) int {
	progress := 0
	for i, c := range sc.setCells {
		m := sc.setMasks[i]
		if m&^union == 0 {
			// This cell belongs to the set.
			continue
		}
		if m&union == 0 {
			continue
		}
		for n := 1; n <= u.cr; n++ {
			bit := uint64(1) << uint(n-1)
			if m&bit != 0 && union&bit != 0 {
				u.cube[c*u.cr+n-1] = false
				progress = 1
			}
		}
		sc.setMasks[i] = m &^ union
	}
	return progress
}
