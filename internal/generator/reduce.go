package generator

import (
	"context"
	"math/rand"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
	"svw.info/latinsq/internal/solver"
)

// reduceClues strips clues from a full solution while the puzzle stays
// solvable within the difficulty ceiling. Clues are removed a whole
// symmetry orbit at a time, in one shuffled pass over orbit
// representatives; an orbit whose removal breaks solvability is put back.
//
// Jigsaw block layouts are not symmetric, so reduction there ignores the
// requested symmetry and removes single cells.
func reduceClues(ctx context.Context, p domain.Params, layout *region.Layout, solution domain.Grid, rng *rand.Rand) (domain.Grid, int, error) {
	cr := layout.CR
	symm := p.Symm
	if p.Jigsaw {
		symm = domain.SymmNone
	}

	grid := solution.Clone()
	reps := orbitReps(symm, cr)
	rng.Shuffle(len(reps), func(i, j int) { reps[i], reps[j] = reps[j], reps[i] })

	nodes := 0
	saved := make([]uint8, 0, 8)
	for _, rep := range reps {
		cells := orbit(symm, cr, rep)
		saved = saved[:0]
		for _, cell := range cells {
			saved = append(saved, grid[cell])
			grid[cell] = 0
		}

		prob := &solver.Problem{Params: p, Layout: layout, Grid: grid.Clone()}
		res, stats, err := solver.Grade(ctx, prob, p.Diff, p.KDiff)
		nodes += stats.Nodes
		if err != nil {
			return nil, nodes, err
		}
		if res.Outcome != domain.Solved {
			for i, cell := range cells {
				grid[cell] = saved[i]
			}
		}
	}
	return grid, nodes, nil
}
