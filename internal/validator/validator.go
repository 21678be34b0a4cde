// Package validator checks user-filled grids against a puzzle's region
// constraints and reports the offending cells.
package validator

import (
	"context"
	"fmt"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/ports"
	"svw.info/latinsq/internal/region"
)

type GridValidator struct{}

func New() *GridValidator { return &GridValidator{} }

var _ ports.Validator = (*GridValidator)(nil)

// Validate checks a play grid (0 = still empty) against the puzzle's
// constraints. It reports every cell involved in a violation: a repeated
// digit within a row, column, block, diagonal or cage, a changed clue, or
// a fully-filled cage whose digits miss the clue sum. A partially filled
// grid with no violations validates as ok.
func (v *GridValidator) Validate(ctx context.Context, params, desc string, grid domain.Grid) (bool, []domain.CellCoord, error) {
	p, err := codec.DecodeParams(params)
	if err != nil {
		return false, nil, err
	}
	puz, err := codec.DecodeDesc(p, desc)
	if err != nil {
		return false, nil, err
	}
	cr := p.Order()
	if len(grid) != cr*cr {
		return false, nil, fmt.Errorf("validate: grid has %d cells, want %d", len(grid), cr*cr)
	}
	for _, n := range grid {
		if int(n) > cr {
			return false, nil, fmt.Errorf("validate: digit %d out of range 1..%d", n, cr)
		}
	}

	bad := make([]bool, cr*cr)
	for cell, fixed := range puz.Fixed {
		if fixed && grid[cell] != puz.Grid[cell] {
			bad[cell] = true
		}
	}

	cells := make([]int, cr)
	for i := 0; i < cr; i++ {
		for x := 0; x < cr; x++ {
			cells[x] = i*cr + x
		}
		markDuplicates(grid, cells, bad)
		for y := 0; y < cr; y++ {
			cells[y] = y*cr + i
		}
		markDuplicates(grid, cells, bad)
		markDuplicates(grid, puz.Layout.BlockCells[i], bad)
	}
	if p.XType {
		diags := region.Diagonals(cr)
		markDuplicates(grid, diags[0], bad)
		markDuplicates(grid, diags[1], bad)
	}
	if puz.Cages != nil {
		for k := 0; k < puz.Cages.NumCages(); k++ {
			cageCells := puz.Cages.Cells[k]
			markDuplicates(grid, cageCells, bad)
			sum, filled := 0, true
			for _, c := range cageCells {
				if grid[c] == 0 {
					filled = false
					break
				}
				sum += int(grid[c])
			}
			if filled && sum != puz.Cages.Sums[k] {
				for _, c := range cageCells {
					bad[c] = true
				}
			}
		}
	}

	var conflicts []domain.CellCoord
	for cell, b := range bad {
		if b {
			conflicts = append(conflicts, domain.CellCoord{X: cell % cr, Y: cell / cr})
		}
	}
	return len(conflicts) == 0, conflicts, nil
}

// markDuplicates flags every cell of a unit whose digit appears more than
// once in it.
func markDuplicates(grid domain.Grid, cells []int, bad []bool) {
	var seen, dup uint32
	for _, c := range cells {
		if grid[c] == 0 {
			continue
		}
		bit := uint32(1) << (grid[c] - 1)
		if seen&bit != 0 {
			dup |= bit
		}
		seen |= bit
	}
	if dup == 0 {
		return
	}
	for _, c := range cells {
		if grid[c] != 0 && dup&(1<<(grid[c]-1)) != 0 {
			bad[c] = true
		}
	}
}
