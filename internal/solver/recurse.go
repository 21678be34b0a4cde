package solver

import (
	"context"

	"svw.info/latinsq/internal/domain"
)

// recurse handles the Guess state: branch on the empty cell with the
// fewest remaining candidates and grade each branch in turn, counting
// solutions until two are seen. The first solution found is the one
// retained.
func (u *usage) recurse(ctx context.Context, p *Problem, maxDiff domain.Difficulty, maxKDiff domain.KillerDifficulty, kdiff domain.KillerDifficulty, nodes *int) (domain.Result, error) {
	cr := u.cr
	best, bestCount := -1, cr+1
	for cell := 0; cell < cr*cr; cell++ {
		if u.grid[cell] != 0 {
			continue
		}
		count := 0
		for n := uint8(1); n <= uint8(cr); n++ {
			if u.possible(cell, n) {
				count++
			}
		}
		if count < bestCount {
			best, bestCount = cell, count
		}
	}

	solutions := 0
	var first domain.Result
	for n := uint8(1); n <= uint8(cr); n++ {
		if !u.possible(best, n) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return domain.Result{Outcome: domain.OutcomeImpossible, Diff: domain.Impossible}, err
		}
		*nodes++

		// Branch from the ladder-refined grid, not the original clues:
		// every deduction made so far holds in all solutions.
		branch := &Problem{
			Params: p.Params,
			Layout: p.Layout,
			Cages:  p.Cages,
			Grid:   u.grid.Clone(),
		}
		branch.Grid[best] = n

		res, err := grade(ctx, branch, maxDiff, maxKDiff, nodes)
		if err != nil {
			return res, err
		}
		switch res.Outcome {
		case domain.OutcomeAmbiguous:
			return domain.Result{Outcome: domain.OutcomeAmbiguous, Diff: domain.Ambiguous}, nil
		case domain.Solved:
			solutions++
			if solutions == 1 {
				first = res
			}
			if solutions >= 2 {
				return domain.Result{Outcome: domain.OutcomeAmbiguous, Diff: domain.Ambiguous}, nil
			}
		}
	}
	if solutions == 0 {
		return domain.Result{Outcome: domain.OutcomeImpossible, Diff: domain.Impossible}, nil
	}
	return domain.Result{
		Outcome: domain.Solved,
		Grid:    first.Grid,
		Diff:    domain.Unreasonable,
		KDiff:   maxKiller(kdiff, first.KDiff),
	}, nil
}
