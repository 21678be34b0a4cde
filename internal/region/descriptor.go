package region

import "fmt"

// Structure descriptors encode an arbitrary partition of the grid (jigsaw
// blocks or killer cages) as a run-length list of "non-dividing" internal
// grid lines. The internal vertical lines are walked in reading order, then
// the horizontal ones column by column, then one terminating virtual
// divider. Between dividers, '_' means a zero-length run, 'a'..'y' a run of
// 1..25, and 'z' a run of 25 that continues without a divider.

func edgePair(cr, i int) (int, int) {
	if i < cr*(cr-1) {
		y, x := i/(cr-1), i%(cr-1)
		return y*cr + x, y*cr + x + 1
	}
	j := i - cr*(cr-1)
	x, y := j/(cr-1), j%(cr-1)
	return y*cr + x, (y+1)*cr + x
}

// EncodeStructure encodes the partition given by cellGroup (cell index to
// group id) for a cr x cr grid.
func EncodeStructure(cr int, cellGroup []int) string {
	total := 2 * cr * (cr - 1)
	out := make([]byte, 0, total/2+1)
	run := 0
	for i := 0; i <= total; i++ {
		divides := true
		if i < total {
			a, b := edgePair(cr, i)
			divides = cellGroup[a] != cellGroup[b]
		}
		if !divides {
			run++
			continue
		}
		for run > 25 {
			out = append(out, 'z')
			run -= 25
		}
		if run > 0 {
			out = append(out, byte('a'-1+run))
		} else {
			out = append(out, '_')
		}
		run = 0
	}
	return string(out)
}

// DecodeStructure is the inverse of EncodeStructure. It returns the dense
// group-id slice; the caller validates group counts and sizes.
func DecodeStructure(cr int, s string) ([]int, error) {
	total := 2 * cr * (cr - 1)
	dsf := NewDSF(cr * cr)
	pos := 0
	for _, ch := range []byte(s) {
		run := 0
		switch {
		case ch == '_':
		case ch == 'z':
			run = 25
		case ch >= 'a' && ch <= 'y':
			run = int(ch-'a') + 1
		default:
			return nil, fmt.Errorf("structure: invalid character %q", ch)
		}
		if pos+run > total {
			return nil, fmt.Errorf("structure: run past the end of the grid")
		}
		for k := 0; k < run; k++ {
			a, b := edgePair(cr, pos+k)
			dsf.Union(a, b)
		}
		pos += run
		if ch != 'z' {
			// A divider follows the run; the terminating virtual divider
			// sits one past the last real line.
			if pos > total {
				return nil, fmt.Errorf("structure: too many dividers")
			}
			pos++
		}
	}
	if pos != total+1 {
		return nil, fmt.Errorf("structure: described %d of %d grid lines", pos, total+1)
	}
	ids, _ := dsf.Canonicalize()
	return ids, nil
}
