package solver

// scratch carries the reusable buffers one grading call passes between
// techniques: cube-position lists for the eliminators, candidate-mask
// tables for set elimination and the BFS state for forcing chains. It is
// owned by the call that allocated it and released when that call returns;
// it is never shared.
type scratch struct {
	positions []int // one unit's worth of cube positions

	setCells []int    // empty cells of the unit under set search
	setMasks []uint64 // their candidate masks

	lines   [][]int // row/column/diagonal cell lists, built on first use
	overlap []int   // block/line intersection cells
	inCells []bool  // per-cell membership marks for pointing

	number   []int // forcing: digit forced into each cell, -1 unvisited
	bfsqueue []int
}

func newScratch(cr int) *scratch {
	area := cr * cr
	return &scratch{
		positions: make([]int, 0, cr),
		setCells:  make([]int, 0, cr),
		setMasks:  make([]uint64, 0, cr),
		overlap:   make([]int, 0, cr),
		inCells:   make([]bool, area),
		number:    make([]int, area),
		bfsqueue:  make([]int, 0, area),
	}
}
