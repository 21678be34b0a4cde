package ports

import (
	"context"
	"time"

	"svw.info/latinsq/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver grades and solves a puzzle given its parameter and description
// strings. Move is the "S..." solve string when the outcome is Solved.
type Solver interface {
	Solve(ctx context.Context, params, desc string) (res domain.Result, move string, st Stats, err error)
}

// Generator creates a new puzzle at the difficulty requested in params.
type Generator interface {
	Generate(ctx context.Context, params string, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator checks a (possibly user-filled) grid against the puzzle's
// region constraints.
type Validator interface {
	Validate(ctx context.Context, params, desc string, grid domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next single deduction for the current grid.
type Hinter interface {
	Hint(ctx context.Context, params, desc string, grid domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
