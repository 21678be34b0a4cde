package domain

// Grid is a square puzzle grid in row-major order; 0 means an empty cell.
// A grid of order cr has cr*cr entries holding digits 1..cr.
type Grid []uint8

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	copy(out, g)
	return out
}

// Full reports whether every cell holds a digit.
func (g Grid) Full() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Result is the outcome of one grading/solving call. Grid is only set when
// Outcome is Solved, and then holds the first solution found.
type Result struct {
	Outcome Outcome
	Grid    Grid
	Diff    Difficulty
	KDiff   KillerDifficulty
}

// Hint describes the next deduction the solver would make, for the UI.
type Hint struct {
	Message string     `json:"message,omitempty"`
	Cell    CellCoord  `json:"cell"`
	Digit   uint8      `json:"digit,omitempty"`
	Level   Difficulty `json:"level"`
}

// Puzzle is a persisted puzzle with metadata. Params, Desc and Solution use
// the engine's string encodings.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Params    string `json:"params"`
	Desc      string `json:"desc"`
	Solution  string `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Params    string `json:"params"`
	CreatedAt int64  `json:"createdAt"`
}
