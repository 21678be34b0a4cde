// Package hint surfaces the next single deduction for an in-progress
// grid, for players who are stuck rather than wrong.
package hint

import (
	"context"
	"fmt"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/ports"
	"svw.info/latinsq/internal/solver"
)

type SingleHinter struct{}

func New() *SingleHinter { return &SingleHinter{} }

var _ ports.Hinter = (*SingleHinter)(nil)

// Hint returns the cheapest available single for the current position.
// ok=false means no single exists: the grid is full, contradictory, or
// the position genuinely needs a harder technique.
func (h *SingleHinter) Hint(ctx context.Context, params, desc string, grid domain.Grid) (domain.Hint, bool, error) {
	p, err := codec.DecodeParams(params)
	if err != nil {
		return domain.Hint{}, false, err
	}
	puz, err := codec.DecodeDesc(p, desc)
	if err != nil {
		return domain.Hint{}, false, err
	}
	cr := p.Order()
	if len(grid) != cr*cr {
		return domain.Hint{}, false, fmt.Errorf("hint: grid has %d cells, want %d", len(grid), cr*cr)
	}

	// Clues always take precedence over whatever the player has entered.
	merged := grid.Clone()
	for cell, fixed := range puz.Fixed {
		if fixed {
			merged[cell] = puz.Grid[cell]
		}
	}

	prob := &solver.Problem{Params: p, Layout: puz.Layout, Cages: puz.Cages, Grid: merged}
	hint, ok := solver.NextHint(prob)
	return hint, ok, nil
}
