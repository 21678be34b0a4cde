package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

func TestEngineSolve(t *testing.T) {
	p, err := codec.DecodeParams("2x2")
	require.NoError(t, err)

	clues := parseGrid(t,
		"1234",
		"3412",
		"2143",
		"0321",
	)
	desc := codec.EncodeDesc(p, clues, region.Regular(2, 2), nil)

	res, move, st, err := NewEngine().Solve(context.Background(), "2x2", desc)
	require.NoError(t, err)
	assert.Equal(t, domain.Solved, res.Outcome)
	assert.Equal(t, domain.Trivial, res.Diff)
	assert.Greater(t, st.Nodes, 0)

	grid, err := codec.DecodeMove(4, move)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), grid[12])
}

func TestEngineSolveAmbiguous(t *testing.T) {
	p, err := codec.DecodeParams("2x2")
	require.NoError(t, err)
	desc := codec.EncodeDesc(p, make(domain.Grid, 16), region.Regular(2, 2), nil)

	res, move, _, err := NewEngine().Solve(context.Background(), "2x2", desc)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAmbiguous, res.Outcome)
	assert.Empty(t, move)
}

func TestEngineSolveBadInput(t *testing.T) {
	_, _, _, err := NewEngine().Solve(context.Background(), "0x0", "a")
	assert.Error(t, err)

	_, _, _, err = NewEngine().Solve(context.Background(), "2x2", "not a description")
	assert.Error(t, err)
}
