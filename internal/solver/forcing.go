package solver

// forcing looks for forcing chains: start from a cell with exactly two
// candidates {n, t} and assume it is not n, which forces it to t. Follow
// the consequences breadth-first through cells that also have exactly two
// candidates: a forced value rules that digit out of every bivalue peer,
// forcing the peer to its other candidate. If some cell on the chain ends
// up forced to n, then either the start cell or that cell is n, so n can
// be eliminated from any third cell that sees both ends.
func (u *usage) forcing(sc *scratch) int {
	cr := u.cr
	area := cr * cr

	for start := 0; start < area; start++ {
		if u.grid[start] != 0 {
			continue
		}
		var cand [2]uint8
		count := 0
		for n := uint8(1); n <= uint8(cr); n++ {
			if u.possible(start, n) {
				if count < 2 {
					cand[count] = n
				}
				count++
			}
		}
		if count != 2 {
			continue
		}
		for i := 0; i < 2; i++ {
			n, t := cand[i], cand[1-i]
			if u.chainFrom(sc, start, n, t) == 1 {
				return 1
			}
		}
	}
	return 0
}

func (u *usage) chainFrom(sc *scratch, start int, n, t uint8) int {
	cr := u.cr
	area := cr * cr
	for i := range sc.number {
		sc.number[i] = -1
	}
	sc.bfsqueue = sc.bfsqueue[:0]
	sc.number[start] = int(t)
	sc.bfsqueue = append(sc.bfsqueue, start)

	for head := 0; head < len(sc.bfsqueue); head++ {
		c := sc.bfsqueue[head]
		v := uint8(sc.number[c])
		for w := 0; w < area; w++ {
			if w == c || u.grid[w] != 0 || sc.number[w] != -1 {
				continue
			}
			if !u.sharesUnit(c, w) || !u.possible(w, v) {
				continue
			}
			other, count := uint8(0), 0
			for d := uint8(1); d <= uint8(cr); d++ {
				if u.possible(w, d) {
					count++
					if d != v {
						other = d
					}
				}
			}
			if count != 2 {
				continue
			}
			sc.number[w] = int(other)
			sc.bfsqueue = append(sc.bfsqueue, w)
		}
	}

	progress := 0
	for _, end := range sc.bfsqueue {
		if end == start || uint8(sc.number[end]) != n {
			continue
		}
		for z := 0; z < area; z++ {
			if z == start || z == end || u.grid[z] != 0 {
				continue
			}
			if !u.possible(z, n) {
				continue
			}
			if u.sharesUnit(z, start) && u.sharesUnit(z, end) {
				u.cube[u.idx(z, n)] = false
				progress = 1
			}
		}
	}
	return progress
}
