package solver

import (
	"context"
	"time"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/ports"
)

func maxDifficulty(a, b domain.Difficulty) domain.Difficulty {
	if a > b {
		return a
	}
	return b
}

func maxKiller(a, b domain.KillerDifficulty) domain.KillerDifficulty {
	if a > b {
		return a
	}
	return b
}

// Grade solves the problem using deduction techniques up to maxDiff (and,
// for killer puzzles, cage techniques up to maxKDiff). The result reports
// the highest technique level that was ever needed; Impossible covers both
// genuine contradictions and puzzles the permitted ladder cannot finish.
// The only error returned is context cancellation.
func Grade(ctx context.Context, p *Problem, maxDiff domain.Difficulty, maxKDiff domain.KillerDifficulty) (domain.Result, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	res, err := grade(ctx, p, maxDiff, maxKDiff, &nodes)
	return res, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}

func grade(ctx context.Context, p *Problem, maxDiff domain.Difficulty, maxKDiff domain.KillerDifficulty, nodes *int) (domain.Result, error) {
	impossible := domain.Result{Outcome: domain.OutcomeImpossible, Diff: domain.Impossible}

	u, ok := newUsage(p)
	if !ok {
		return impossible, nil
	}
	sc := newScratch(u.cr)

	diff, kdiff, ok := u.ladder(sc, maxDiff, maxKDiff, nodes)
	if !ok {
		return impossible, nil
	}
	if u.grid.Full() {
		return domain.Result{Outcome: domain.Solved, Grid: u.grid, Diff: diff, KDiff: kdiff}, nil
	}
	if maxDiff < domain.Unreasonable {
		// The permitted ladder stalled; without recursion that is failure.
		return impossible, nil
	}
	return u.recurse(ctx, p, maxDiff, maxKDiff, kdiff, nodes)
}

// ladder applies every permitted technique in fixed cost order, restarting
// from the cheapest whenever one of them progresses, until none does.
// Returns ok=false on contradiction.
func (u *usage) ladder(sc *scratch, maxDiff domain.Difficulty, maxKDiff domain.KillerDifficulty, nodes *int) (domain.Difficulty, domain.KillerDifficulty, bool) {
	cr := u.cr
	diff := domain.Trivial
	kdiff := domain.CageSingles

	for {
		*nodes++
		progress := false

		// Block-wise positional elimination.
		for b := 0; b < cr; b++ {
			for n := uint8(1); n <= uint8(cr); n++ {
				if u.blk[b*cr+int(n)-1] {
					continue
				}
				sc.positions = u.listPositions(sc.positions, u.layout.BlockCells[b], n)
				switch u.elim(sc.positions) {
				case -1:
					return 0, 0, false
				case 1:
					progress = true
				}
			}
		}
		if progress {
			continue
		}

		// Single-cell and one-free-cell cages, including derived ones.
		if u.cages != nil {
			r, level := u.killerSingles(maxKDiff)
			if r < 0 {
				return 0, 0, false
			}
			if r > 0 {
				kdiff = maxKiller(kdiff, level)
				continue
			}
		}

		if maxDiff < domain.Basic {
			break
		}

		// Row, column and diagonal positional elimination.
		for y := 0; y < cr; y++ {
			for n := uint8(1); n <= uint8(cr); n++ {
				if u.row[y*cr+int(n)-1] {
					continue
				}
				sc.positions = u.rowPositions(sc.positions, y, n)
				switch u.elim(sc.positions) {
				case -1:
					return 0, 0, false
				case 1:
					progress = true
				}
			}
		}
		for x := 0; x < cr; x++ {
			for n := uint8(1); n <= uint8(cr); n++ {
				if u.col[x*cr+int(n)-1] {
					continue
				}
				sc.positions = u.colPositions(sc.positions, x, n)
				switch u.elim(sc.positions) {
				case -1:
					return 0, 0, false
				case 1:
					progress = true
				}
			}
		}
		if u.diag {
			for d := 0; d < 2; d++ {
				for n := uint8(1); n <= uint8(cr); n++ {
					if u.dg[d*cr+int(n)-1] {
						continue
					}
					sc.positions = u.listPositions(sc.positions, u.diags[d], n)
					switch u.elim(sc.positions) {
					case -1:
						return 0, 0, false
					case 1:
						progress = true
					}
				}
			}
		}

		// Numeric elimination.
		for cell := 0; cell < cr*cr; cell++ {
			if u.grid[cell] != 0 {
				continue
			}
			sc.positions = u.cellPositions(sc.positions, cell)
			switch u.elim(sc.positions) {
			case -1:
				return 0, 0, false
			case 1:
				progress = true
			}
		}
		if progress {
			diff = maxDifficulty(diff, domain.Basic)
			continue
		}

		// Cage min/max and sum-combination pruning.
		if u.cages != nil && maxKDiff >= domain.CageMinMax {
			switch u.killerMinMax() {
			case -1:
				return 0, 0, false
			case 1:
				kdiff = maxKiller(kdiff, domain.CageMinMax)
				continue
			}
		}
		if u.cages != nil && maxKDiff >= domain.CageSums {
			switch u.killerSums(sc) {
			case -1:
				return 0, 0, false
			case 1:
				kdiff = maxKiller(kdiff, domain.CageSums)
				continue
			}
		}

		// Intersection (pointing) eliminations.
		if maxDiff >= domain.Intermediate {
			if u.intersect(sc) == 1 {
				diff = maxDifficulty(diff, domain.Intermediate)
				continue
			}
		}

		// Naked/hidden subset eliminations.
		if maxDiff >= domain.Advanced {
			switch u.setElim(sc) {
			case -1:
				return 0, 0, false
			case 1:
				diff = maxDifficulty(diff, domain.Advanced)
				continue
			}
		}

		// Forcing chains over bivalue cells.
		if maxDiff >= domain.Extreme {
			if u.forcing(sc) == 1 {
				diff = maxDifficulty(diff, domain.Extreme)
				continue
			}
		}

		break
	}
	return diff, kdiff, true
}
