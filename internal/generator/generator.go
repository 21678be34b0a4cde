// Package generator creates puzzles: a random solved grid, then either
// symmetric clue reduction or killer cage construction, retried until the
// result grades at the requested difficulty.
package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/ports"
	"svw.info/latinsq/internal/region"
	"svw.info/latinsq/internal/solver"
)

// exactAttempts is how many fresh grids are tried for an exact difficulty
// match before the hardest puzzle seen so far is accepted instead. Small
// grids cannot reach the higher difficulties at all, so generation must
// not insist forever.
const exactAttempts = 50

type PuzzleGenerator struct{}

func New() *PuzzleGenerator { return &PuzzleGenerator{} }

var _ ports.Generator = (*PuzzleGenerator)(nil)

func (g *PuzzleGenerator) Generate(ctx context.Context, params string, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}

	p, err := codec.DecodeParams(params)
	if err != nil {
		return nil, st, err
	}
	rng := rand.New(rand.NewSource(seed))

	var bestPuz *domain.Puzzle
	bestDiff := domain.Trivial - 1

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}

		var layout *region.Layout
		if p.Jigsaw {
			layout = region.Jigsaw(p.Order(), rng)
		} else {
			layout = region.Regular(p.C, p.R)
		}

		solution, ok := fillGrid(p, layout, rng)
		if !ok {
			continue
		}

		var desc string
		var res domain.Result
		if p.Killer {
			cages, cres, n, cerr := generateCages(ctx, p, layout, solution, rng)
			st.Nodes += n
			if cerr != nil {
				st.Duration = time.Since(start)
				return nil, st, cerr
			}
			if cages == nil {
				continue
			}
			res = cres
			desc = codec.EncodeDesc(p, make(domain.Grid, p.Order()*p.Order()), layout, cages)
		} else {
			grid, n, rerr := reduceClues(ctx, p, layout, solution, rng)
			st.Nodes += n
			if rerr != nil {
				st.Duration = time.Since(start)
				return nil, st, rerr
			}
			prob := &solver.Problem{Params: p, Layout: layout, Grid: grid.Clone()}
			gres, gst, gerr := solver.Grade(ctx, prob, p.Diff, p.KDiff)
			st.Nodes += gst.Nodes
			if gerr != nil {
				st.Duration = time.Since(start)
				return nil, st, gerr
			}
			if gres.Outcome != domain.Solved {
				continue
			}
			res = gres
			desc = codec.EncodeDesc(p, grid, layout, nil)
		}

		puz := &domain.Puzzle{
			Seed:      seed,
			Params:    codec.EncodeParams(p),
			Desc:      desc,
			Solution:  codec.EncodeMove(solution),
			CreatedAt: time.Now().Unix(),
		}
		// Cage growth is itself the difficulty targeting for killer
		// puzzles; for the others, insist on an exact grade first.
		if p.Killer || res.Diff == p.Diff {
			st.Duration = time.Since(start)
			return puz, st, nil
		}
		if res.Diff > bestDiff {
			bestPuz, bestDiff = puz, res.Diff
		}
		if attempt >= exactAttempts && bestPuz != nil {
			st.Duration = time.Since(start)
			return bestPuz, st, nil
		}
	}
}
