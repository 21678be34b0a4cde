package region

import "math/rand"

// maxJigsawTries bounds the number of from-scratch construction attempts
// before giving up; random merging stalls occasionally and the whole
// partition is cheaper to rebuild than to repair.
const maxJigsawTries = 1000

// Jigsaw grows n randomly-shaped connected blocks of n cells each on an
// n x n grid by randomized union-find merging of neighboring fragments. A
// merge that would overshoot the target size is never taken; if no legal
// merge remains the construction is retried from scratch.
func Jigsaw(n int, rng *rand.Rand) *Layout {
	for try := 0; try < maxJigsawTries; try++ {
		cellBlock, ok := growFragments(n, rng)
		if !ok {
			continue
		}
		l, err := NewLayout(n, cellBlock)
		if err != nil {
			continue
		}
		return l
	}
	panic("jigsaw: no valid partition after repeated attempts")
}

func growFragments(n int, rng *rand.Rand) ([]int, bool) {
	area := n * n
	dsf := NewDSF(area)

	// Merge until every fragment has exactly n cells. Prefer merging the
	// two smallest equal-sized fragments available; this keeps growth even
	// and avoids stranding singletons between full blocks.
	for {
		done := true
		smallest := n + 1
		for i := 0; i < area; i++ {
			if s := dsf.Size(i); s < n {
				done = false
				if s < smallest {
					smallest = s
				}
			}
		}
		if done {
			return dsfBlocks(dsf, n)
		}

		// Collect candidate merges touching a smallest fragment.
		var equal, any [][2]int
		for c := 0; c < area; c++ {
			if dsf.Size(c) != smallest {
				continue
			}
			x := c % n
			for _, nb := range neighborCells(c, x, n) {
				if dsf.Find(nb) == dsf.Find(c) {
					continue
				}
				s := dsf.Size(nb)
				if smallest+s > n {
					continue
				}
				if s == smallest {
					equal = append(equal, [2]int{c, nb})
				} else {
					any = append(any, [2]int{c, nb})
				}
			}
		}
		pool := equal
		if len(pool) == 0 {
			pool = any
		}
		if len(pool) == 0 {
			return nil, false
		}
		pick := pool[rng.Intn(len(pool))]
		dsf.Union(pick[0], pick[1])
	}
}

func neighborCells(c, x, n int) []int {
	nbs := make([]int, 0, 4)
	if x > 0 {
		nbs = append(nbs, c-1)
	}
	if x < n-1 {
		nbs = append(nbs, c+1)
	}
	if c >= n {
		nbs = append(nbs, c-n)
	}
	if c < n*n-n {
		nbs = append(nbs, c+n)
	}
	return nbs
}

func dsfBlocks(dsf *DSF, n int) ([]int, bool) {
	ids, k := dsf.Canonicalize()
	if k != n {
		return nil, false
	}
	return ids, true
}
