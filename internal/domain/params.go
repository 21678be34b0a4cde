package domain

import "errors"

// OrderMax bounds the grid side so that per-region digit sets fit in a
// 32-bit mask in the lightweight generator.
const OrderMax = 31

// Params describes a puzzle shape and generation preferences. For regular
// grids the blocks are R cells wide and C cells tall, giving a grid of side
// C*R. Jigsaw puzzles set R to 1 and use C irregular blocks of C cells.
type Params struct {
	C, R   int
	Jigsaw bool
	XType  bool // both main diagonals are regions
	Killer bool
	Symm   Symmetry
	Diff   Difficulty
	KDiff  KillerDifficulty
}

// Order returns the grid side (and the number of digits).
func (p Params) Order() int { return p.C * p.R }

// DefaultParams returns the standard 9x9 puzzle at basic difficulty.
func DefaultParams() Params {
	return Params{C: 3, R: 3, Symm: SymmRot2, Diff: Basic}
}

// Validate rejects shapes the engine cannot generate. The 2x2 grid has an
// undocumented digit-range quirk in the classic rules (its regions would
// need a digit larger than either block dimension), so both block
// dimensions must be at least 2; jigsaw sizes start at 3.
func (p Params) Validate() error {
	if p.Jigsaw {
		if p.C < 3 {
			return errors.New("jigsaw puzzles need a grid side of at least 3")
		}
		if p.R != 1 {
			return errors.New("jigsaw puzzles use a single block dimension")
		}
	} else {
		if p.C < 2 || p.R < 2 {
			return errors.New("both block dimensions must be at least 2")
		}
	}
	if p.Order() > OrderMax {
		return errors.New("grid side larger than 31 is not supported")
	}
	if p.Diff < Trivial || p.Diff > Unreasonable {
		return errors.New("invalid difficulty ceiling")
	}
	if p.Killer && (p.KDiff < CageSingles || p.KDiff > CageSums) {
		return errors.New("invalid killer difficulty ceiling")
	}
	return nil
}
