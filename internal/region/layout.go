package region

import "fmt"

// Layout is the block partition of a cr x cr grid: a mapping from cell
// index (y*cr+x) to block id and its inverse. Rows and columns are always
// implicit arithmetic progressions and are not stored.
//
// Layout is immutable after construction and safe to share between
// concurrent solving attempts.
type Layout struct {
	CR          int
	CellBlock   []int   // cell index -> block id, 0..CR-1
	BlockCells  [][]int // block id -> member cell indices, ascending
	Rectangular bool
}

// Regular builds the c x r rectangular block layout: blocks are r cells
// wide and c cells tall, giving cr = c*r blocks of cr cells.
func Regular(c, r int) *Layout {
	cr := c * r
	cellBlock := make([]int, cr*cr)
	for y := 0; y < cr; y++ {
		for x := 0; x < cr; x++ {
			cellBlock[y*cr+x] = (y/c)*c + x/r
		}
	}
	l, err := NewLayout(cr, cellBlock)
	if err != nil {
		// The rectangular mapping is hard-coded; failure is a bug.
		panic("regular layout failed validation: " + err.Error())
	}
	l.Rectangular = true
	return l
}

// NewLayout builds a Layout from an arbitrary block map and validates it:
// exactly cr blocks of cr cells each, every block orthogonally connected.
func NewLayout(cr int, cellBlock []int) (*Layout, error) {
	if len(cellBlock) != cr*cr {
		return nil, fmt.Errorf("layout: got %d cells, want %d", len(cellBlock), cr*cr)
	}
	l := &Layout{
		CR:         cr,
		CellBlock:  cellBlock,
		BlockCells: make([][]int, cr),
	}
	for i, b := range cellBlock {
		if b < 0 || b >= cr {
			return nil, fmt.Errorf("layout: cell %d has out-of-range block %d", i, b)
		}
		l.BlockCells[b] = append(l.BlockCells[b], i)
	}
	for b := 0; b < cr; b++ {
		if len(l.BlockCells[b]) != cr {
			return nil, fmt.Errorf("layout: block %d has %d cells, want %d", b, len(l.BlockCells[b]), cr)
		}
		if !connected(cr, l.BlockCells[b]) {
			return nil, fmt.Errorf("layout: block %d is not connected", b)
		}
	}
	return l, nil
}

// connected flood-fills cells (a sorted cell-index list) from its first
// member and reports whether every member was reached via orthogonal
// adjacency.
func connected(cr int, cells []int) bool {
	in := make(map[int]bool, len(cells))
	for _, c := range cells {
		in[c] = true
	}
	seen := map[int]bool{cells[0]: true}
	queue := []int{cells[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		x := c % cr
		for _, nb := range [4]int{c - cr, c + cr, c - 1, c + 1} {
			switch nb {
			case c - 1:
				if x == 0 {
					continue
				}
			case c + 1:
				if x == cr-1 {
					continue
				}
			default:
				if nb < 0 || nb >= cr*cr {
					continue
				}
			}
			if in[nb] && !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(cells)
}

// Diagonals returns the two main diagonals of a cr x cr grid as cell-index
// lists: first the falling diagonal (top-left to bottom-right), then the
// rising one.
func Diagonals(cr int) [2][]int {
	var d [2][]int
	for i := 0; i < cr; i++ {
		d[0] = append(d[0], i*cr+i)
		d[1] = append(d[1], i*cr+(cr-1-i))
	}
	return d
}
