package solver

import (
	"context"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/ports"
)

// Engine adapts the grading solver to the string boundary used by the
// service layer. Solving a description always permits the full ladder
// including recursion, so hand-edited ill-posed puzzles surface as
// Ambiguous or Impossible rather than failing to finish.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, params, desc string) (domain.Result, string, ports.Stats, error) {
	p, err := codec.DecodeParams(params)
	if err != nil {
		return domain.Result{}, "", ports.Stats{}, err
	}
	puz, err := codec.DecodeDesc(p, desc)
	if err != nil {
		return domain.Result{}, "", ports.Stats{}, err
	}
	prob := &Problem{Params: p, Layout: puz.Layout, Cages: puz.Cages, Grid: puz.Grid}
	res, st, err := Grade(ctx, prob, domain.Unreasonable, domain.CageSums)
	if err != nil {
		return res, "", st, err
	}
	move := ""
	if res.Outcome == domain.Solved {
		move = codec.EncodeMove(res.Grid)
	}
	return res, move, st, nil
}
