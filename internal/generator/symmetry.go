package generator

import "svw.info/latinsq/internal/domain"

// orbit lists the cells equivalent to cell under the chosen symmetry,
// including the cell itself, with duplicates removed (cells on a symmetry
// axis map to themselves). Clue reduction always removes whole orbits so
// the final clue pattern carries the symmetry.
func orbit(symm domain.Symmetry, cr, cell int) []int {
	x, y := cell%cr, cell/cr
	rx, ry := cr-1-x, cr-1-y

	var coords [][2]int
	switch symm {
	case domain.SymmNone:
		coords = [][2]int{{x, y}}
	case domain.SymmRot2:
		coords = [][2]int{{x, y}, {rx, ry}}
	case domain.SymmRot4:
		coords = [][2]int{{x, y}, {ry, x}, {rx, ry}, {y, rx}}
	case domain.SymmMirror2:
		coords = [][2]int{{x, y}, {rx, y}}
	case domain.SymmMirror2D:
		coords = [][2]int{{x, y}, {y, x}}
	case domain.SymmMirror4:
		coords = [][2]int{{x, y}, {rx, y}, {x, ry}, {rx, ry}}
	case domain.SymmMirror4D:
		coords = [][2]int{{x, y}, {y, x}, {rx, ry}, {ry, rx}}
	case domain.SymmMirror8:
		coords = [][2]int{
			{x, y}, {rx, y}, {x, ry}, {rx, ry},
			{y, x}, {ry, x}, {y, rx}, {ry, rx},
		}
	default:
		coords = [][2]int{{x, y}}
	}

	cells := make([]int, 0, len(coords))
	for _, c := range coords {
		id := c[1]*cr + c[0]
		seen := false
		for _, prev := range cells {
			if prev == id {
				seen = true
				break
			}
		}
		if !seen {
			cells = append(cells, id)
		}
	}
	return cells
}

// orbitReps returns one representative per orbit, the lowest-indexed cell
// of each.
func orbitReps(symm domain.Symmetry, cr int) []int {
	reps := make([]int, 0, cr*cr)
	for cell := 0; cell < cr*cr; cell++ {
		min := cell
		for _, o := range orbit(symm, cr, cell) {
			if o < min {
				min = o
			}
		}
		if min == cell {
			reps = append(reps, cell)
		}
	}
	return reps
}
