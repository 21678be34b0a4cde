package domain

// Difficulty grades a puzzle by the hardest deduction technique needed to
// solve it. The order matters: the solver tries techniques cheapest-first
// and reports the maximum level it ever had to reach.
type Difficulty int

const (
	Trivial      Difficulty = iota // block-wise positional elimination only
	Basic                          // row/column positional and numeric elimination
	Intermediate                   // intersection (pointing) eliminations
	Advanced                       // naked/hidden subset eliminations
	Extreme                        // forcing chains over bivalue cells
	Unreasonable                   // requires guessing and backtracking

	// Terminal classifications, never requested as a ceiling.
	Ambiguous  // more than one solution
	Impossible // no solution, or the ladder stalled below the ceiling
)

func (d Difficulty) String() string {
	switch d {
	case Trivial:
		return "trivial"
	case Basic:
		return "basic"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Extreme:
		return "extreme"
	case Unreasonable:
		return "unreasonable"
	case Ambiguous:
		return "ambiguous"
	case Impossible:
		return "impossible"
	}
	return "unknown"
}

// Code returns the single-letter parameter-string code for a difficulty
// ceiling ("t", "b", "i", "a", "e", "u").
func (d Difficulty) Code() string {
	switch d {
	case Trivial:
		return "t"
	case Basic:
		return "b"
	case Intermediate:
		return "i"
	case Advanced:
		return "a"
	case Extreme:
		return "e"
	case Unreasonable:
		return "u"
	}
	return ""
}

// DifficultyFromCode is the inverse of Code.
func DifficultyFromCode(c byte) (Difficulty, bool) {
	switch c {
	case 't':
		return Trivial, true
	case 'b':
		return Basic, true
	case 'i':
		return Intermediate, true
	case 'a':
		return Advanced, true
	case 'e':
		return Extreme, true
	case 'u':
		return Unreasonable, true
	}
	return 0, false
}

// KillerDifficulty is the second, independent grading axis for cage-sum
// reasoning in killer puzzles.
type KillerDifficulty int

const (
	CageSingles KillerDifficulty = iota // single-cell cages placed directly
	CageGhosts                          // derived cages from partial region coverage
	CageMinMax                          // min/max achievable-sum pruning
	CageSums                            // full sum-combination pruning
)

func (k KillerDifficulty) String() string {
	switch k {
	case CageSingles:
		return "cage-singles"
	case CageGhosts:
		return "cage-ghosts"
	case CageMinMax:
		return "cage-minmax"
	case CageSums:
		return "cage-sums"
	}
	return "unknown"
}

// Symmetry selects the clue-placement symmetry group used during
// generation.
type Symmetry int

const (
	SymmNone Symmetry = iota
	SymmRot2
	SymmRot4
	SymmMirror2
	SymmMirror2D
	SymmMirror4
	SymmMirror4D
	SymmMirror8
)

// Code returns the parameter-string code for a symmetry choice.
func (s Symmetry) Code() string {
	switch s {
	case SymmNone:
		return "a"
	case SymmRot2:
		return "r2"
	case SymmRot4:
		return "r4"
	case SymmMirror2:
		return "m2"
	case SymmMirror2D:
		return "m2d"
	case SymmMirror4:
		return "m4"
	case SymmMirror4D:
		return "m4d"
	case SymmMirror8:
		return "m8"
	}
	return ""
}

// Outcome is the three-way result of a solving attempt.
type Outcome int

const (
	Solved Outcome = iota
	OutcomeAmbiguous
	OutcomeImpossible
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case OutcomeAmbiguous:
		return "ambiguous"
	case OutcomeImpossible:
		return "impossible"
	}
	return "unknown"
}
