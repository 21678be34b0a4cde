package generator

import (
	"context"
	"math/rand"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
	"svw.info/latinsq/internal/solver"
)

// mergeFailLimit is the number of consecutive rejected merges after which
// cage growth gives up and keeps the best-known cage set.
const mergeFailLimit = 10

// generateCages partitions the grid into killer cages whose sums are taken
// from the solved grid, grown until the empty-grid puzzle sits at (or
// just under) the difficulty ceilings. Returns ok=false when even the
// initial fine-grained partition is not solvable within the ceilings; the
// caller retries with a fresh solution grid.
//
// Cages never contain a repeated solution digit, since the solver treats a
// cage as a no-duplicate unit.
func generateCages(ctx context.Context, p domain.Params, layout *region.Layout, solution domain.Grid, rng *rand.Rand) (*region.Cages, domain.Result, int, error) {
	cr := layout.CR
	area := cr * cr
	nodes := 0

	// Seed the partition with dominoes: shuffle the orthogonal edges and
	// pair up cells greedily. Leftover cells stay singletons for now.
	type edge struct{ a, b int }
	edges := make([]edge, 0, 2*area)
	for cell := 0; cell < area; cell++ {
		x := cell % cr
		if x+1 < cr {
			edges = append(edges, edge{cell, cell + 1})
		}
		if cell+cr < area {
			edges = append(edges, edge{cell, cell + cr})
		}
	}
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	dsf := region.NewDSF(area)
	for _, e := range edges {
		if dsf.Size(e.a) == 1 && dsf.Size(e.b) == 1 && solution[e.a] != solution[e.b] {
			dsf.Union(e.a, e.b)
		}
	}

	// Isolated single-cell cages give the sum away, so fold each leftover
	// singleton into a small neighbouring fragment where the digits allow.
	cellCage, _ := dsf.Canonicalize()
	for cell := 0; cell < area; cell++ {
		if dsf.Size(cell) != 1 {
			continue
		}
		x := cell % cr
		var pick int = -1
		count := 0
		for _, nb := range [4]int{cell - cr, cell + cr, cell - 1, cell + 1} {
			if nb < 0 || nb >= area {
				continue
			}
			if (nb == cell-1 && x == 0) || (nb == cell+1 && x == cr-1) {
				continue
			}
			if dsf.Size(nb) > 2 {
				continue
			}
			if cageHasDigit(cellCage, solution, cellCage[nb], solution[cell]) {
				continue
			}
			count++
			if rng.Intn(count) == 0 {
				pick = nb
			}
		}
		if pick >= 0 {
			dsf.Union(cell, pick)
			cellCage, _ = dsf.Canonicalize()
		}
	}
	cellCage, _ = dsf.Canonicalize()

	cages, err := region.NewCages(cr, cellCage, nil)
	if err != nil {
		return nil, domain.Result{}, nodes, err
	}
	setSums(cages, solution)

	best, res, gn, err := gradeCages(ctx, p, layout, cages, nodes)
	nodes = gn
	if err != nil || res.Outcome != domain.Solved {
		return nil, res, nodes, err
	}

	// Grow cages by merging adjacent pairs, keeping every merge that holds
	// the puzzle within the ceilings. A rejected merge is rolled back; too
	// many rejections in a row ends the growth phase.
	fails := 0
	for fails < mergeFailLimit {
		a, b, ok := pickMerge(best, solution, rng)
		if !ok {
			break
		}
		trial := best.Clone()
		trial.Merge(a, b)

		tres, tn, gerr := gradeTrial(ctx, p, layout, trial)
		nodes += tn
		if gerr != nil {
			return nil, domain.Result{}, nodes, gerr
		}
		if tres.Outcome == domain.Solved {
			best, res = trial, tres
			fails = 0
		} else {
			fails++
		}
	}
	return best, res, nodes, nil
}

func gradeCages(ctx context.Context, p domain.Params, layout *region.Layout, cages *region.Cages, nodes int) (*region.Cages, domain.Result, int, error) {
	res, n, err := gradeTrial(ctx, p, layout, cages)
	return cages, res, nodes + n, err
}

func gradeTrial(ctx context.Context, p domain.Params, layout *region.Layout, cages *region.Cages) (domain.Result, int, error) {
	prob := &solver.Problem{
		Params: p,
		Layout: layout,
		Cages:  cages,
		Grid:   make(domain.Grid, layout.CR*layout.CR),
	}
	res, stats, err := solver.Grade(ctx, prob, p.Diff, p.KDiff)
	return res, stats.Nodes, err
}

// pickMerge chooses a random pair of adjacent cages whose union stays
// within size cr and repeats no solution digit.
func pickMerge(c *region.Cages, solution domain.Grid, rng *rand.Rand) (int, int, bool) {
	n := c.NumCages()
	order := rng.Perm(n)
	for _, a := range order {
		var pick int = -1
		count := 0
		for b := 0; b < n; b++ {
			if b == a || len(c.Cells[a])+len(c.Cells[b]) > c.CR {
				continue
			}
			if !c.Adjacent(a, b) || mergedDigitsClash(c, solution, a, b) {
				continue
			}
			count++
			if rng.Intn(count) == 0 {
				pick = b
			}
		}
		if pick >= 0 {
			return a, pick, true
		}
	}
	return 0, 0, false
}

func mergedDigitsClash(c *region.Cages, solution domain.Grid, a, b int) bool {
	var seen uint32
	for _, id := range [2]int{a, b} {
		for _, cell := range c.Cells[id] {
			bit := uint32(1) << (solution[cell] - 1)
			if seen&bit != 0 {
				return true
			}
			seen |= bit
		}
	}
	return false
}

func cageHasDigit(cellCage []int, solution domain.Grid, cage int, n uint8) bool {
	for cell, id := range cellCage {
		if id == cage && solution[cell] == n {
			return true
		}
	}
	return false
}

func setSums(c *region.Cages, solution domain.Grid) {
	for id, cells := range c.Cells {
		sum := 0
		for _, cell := range cells {
			sum += int(solution[cell])
		}
		c.Sums[id] = sum
	}
}
