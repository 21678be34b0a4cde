package codec

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

// Puzzle is the decoded form of a description string: the clue grid plus
// the region model it is played on.
type Puzzle struct {
	Params domain.Params
	Layout *region.Layout
	Cages  *region.Cages // nil unless killer
	Grid   domain.Grid   // clue grid
	Fixed  []bool        // clue mask
}

// EncodeDesc writes the description string for a puzzle: the run-length
// clue grid, a block-structure descriptor for jigsaw shapes, and the cage
// structure and cage clue grid for killer puzzles, comma-separated.
func EncodeDesc(p domain.Params, grid domain.Grid, layout *region.Layout, cages *region.Cages) string {
	cr := p.Order()
	parts := []string{encodeNumberGrid(grid)}
	if p.Jigsaw {
		parts = append(parts, region.EncodeStructure(cr, layout.CellBlock))
	}
	if p.Killer {
		clues := make([]int, cr*cr)
		for k := 0; k < cages.NumCages(); k++ {
			// The clue sits on the lowest-indexed cell of its cage.
			clues[cages.Cells[k][0]] = cages.Sums[k]
		}
		parts = append(parts,
			region.EncodeStructure(cr, cages.CellCage),
			encodeClueList(clues))
	}
	return strings.Join(parts, ",")
}

// DecodeDesc parses and validates a description string against its
// parameters.
func DecodeDesc(p domain.Params, desc string) (*Puzzle, error) {
	cr := p.Order()
	parts := strings.Split(desc, ",")
	want := 1
	if p.Jigsaw {
		want++
	}
	if p.Killer {
		want += 2
	}
	if len(parts) != want {
		return nil, fmt.Errorf("desc: got %d comma-separated sections, want %d", len(parts), want)
	}

	grid, fixed, err := decodeNumberGrid(cr, parts[0])
	if err != nil {
		return nil, err
	}
	for _, v := range grid {
		if int(v) > cr {
			return nil, fmt.Errorf("desc: clue %d out of range 1..%d", v, cr)
		}
	}

	next := 1
	var layout *region.Layout
	if p.Jigsaw {
		ids, err := region.DecodeStructure(cr, parts[next])
		next++
		if err != nil {
			return nil, fmt.Errorf("desc: block structure: %w", err)
		}
		layout, err = region.NewLayout(cr, ids)
		if err != nil {
			return nil, fmt.Errorf("desc: block structure: %w", err)
		}
	} else {
		layout = region.Regular(p.C, p.R)
	}

	var cages *region.Cages
	if p.Killer {
		ids, err := region.DecodeStructure(cr, parts[next])
		if err != nil {
			return nil, fmt.Errorf("desc: cage structure: %w", err)
		}
		clues, err := decodeClueList(cr, parts[next+1])
		if err != nil {
			return nil, fmt.Errorf("desc: cage clues: %w", err)
		}
		cages, err = buildCages(cr, ids, clues)
		if err != nil {
			return nil, fmt.Errorf("desc: %w", err)
		}
	}

	return &Puzzle{Params: p, Layout: layout, Cages: cages, Grid: grid, Fixed: fixed}, nil
}

func buildCages(cr int, ids, clues []int) (*region.Cages, error) {
	cages, err := region.NewCages(cr, ids, nil)
	if err != nil {
		return nil, err
	}
	for cell, clue := range clues {
		if clue == 0 {
			continue
		}
		id := ids[cell]
		if cages.Cells[id][0] != cell {
			return nil, fmt.Errorf("cage clue %d not on its cage's first cell", clue)
		}
		if cages.Sums[id] != 0 {
			return nil, fmt.Errorf("cage has two clues")
		}
		cages.Sums[id] = clue
	}
	for id, sum := range cages.Sums {
		if sum == 0 {
			return nil, fmt.Errorf("cage %d has no clue", id)
		}
	}
	return cages, nil
}

// encodeNumberGrid run-length encodes a digit grid: letters a..z are runs
// of 1..26 empty cells, numbers are printed in decimal with '_' keeping
// adjacent numbers apart.
func encodeNumberGrid(grid domain.Grid) string {
	clues := make([]int, len(grid))
	for i, v := range grid {
		clues[i] = int(v)
	}
	return encodeClueList(clues)
}

func encodeClueList(clues []int) string {
	var b strings.Builder
	run := 0
	for i := 0; i <= len(clues); i++ {
		n := -1
		if i < len(clues) {
			n = clues[i]
		}
		if n == 0 {
			run++
			continue
		}
		if run > 0 {
			for run > 26 {
				b.WriteByte('z')
				run -= 26
			}
			b.WriteByte(byte('a' - 1 + run))
			run = 0
		} else if n > 0 && b.Len() > 0 {
			b.WriteByte('_')
		}
		if n > 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

func decodeNumberGrid(cr int, s string) (domain.Grid, []bool, error) {
	clues, err := decodeClueList(cr, s)
	if err != nil {
		return nil, nil, err
	}
	grid := make(domain.Grid, len(clues))
	fixed := make([]bool, len(clues))
	for i, v := range clues {
		grid[i] = uint8(v)
		fixed[i] = v != 0
	}
	return grid, fixed, nil
}

func decodeClueList(cr int, s string) ([]int, error) {
	area := cr * cr
	clues := make([]int, area)
	i := 0
	for pos := 0; pos < len(s); {
		ch := s[pos]
		switch {
		case ch >= 'a' && ch <= 'z':
			run := int(ch-'a') + 1
			if i+run > area {
				return nil, fmt.Errorf("grid: too much data to fit the grid")
			}
			i += run
			pos++
		case ch == '_':
			pos++
		case ch >= '1' && ch <= '9':
			end := pos
			for end < len(s) && s[end] >= '0' && s[end] <= '9' {
				end++
			}
			v, err := strconv.Atoi(s[pos:end])
			if err != nil || v == 0 {
				return nil, fmt.Errorf("grid: bad number %q", s[pos:end])
			}
			if i >= area {
				return nil, fmt.Errorf("grid: too much data to fit the grid")
			}
			clues[i] = v
			i++
			pos = end
		default:
			return nil, fmt.Errorf("grid: invalid character %q", ch)
		}
	}
	if i < area {
		return nil, fmt.Errorf("grid: not enough data to fill the grid")
	}
	return clues, nil
}
