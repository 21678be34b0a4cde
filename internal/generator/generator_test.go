package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
	"svw.info/latinsq/internal/solver"
)

func TestFillGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name   string
		params domain.Params
		layout *region.Layout
	}{
		{"4x4", domain.Params{C: 2, R: 2}, region.Regular(2, 2)},
		{"9x9", domain.Params{C: 3, R: 3}, region.Regular(3, 3)},
		{"6x6", domain.Params{C: 3, R: 2}, region.Regular(3, 2)},
		{"9x9 diagonal", domain.Params{C: 3, R: 3, XType: true}, region.Regular(3, 3)},
		{"7 jigsaw", domain.Params{C: 7, R: 1, Jigsaw: true}, region.Jigsaw(7, rng)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, ok := fillGrid(tc.params, tc.layout, rng)
			if !ok {
				t.Fatal("fillGrid gave up")
			}
			// Grading the full grid checks row, column, block and diagonal
			// validity in one step.
			p := &solver.Problem{Params: tc.params, Layout: tc.layout, Grid: grid}
			res, _, err := solver.Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome != domain.Solved {
				t.Fatalf("filled grid grades %s", res.Outcome)
			}
		})
	}
}

func TestOrbits(t *testing.T) {
	// Center of a 5x5 grid is fixed by every symmetry.
	for s := domain.SymmNone; s <= domain.SymmMirror8; s++ {
		if got := orbit(s, 5, 12); len(got) != 1 || got[0] != 12 {
			t.Fatalf("symmetry %d: center orbit = %v", s, got)
		}
	}
	if got := orbit(domain.SymmRot2, 4, 1); len(got) != 2 || got[1] != 14 {
		t.Fatalf("rot2 orbit of cell 1 = %v, want [1 14]", got)
	}
	if got := orbit(domain.SymmMirror8, 4, 1); len(got) != 8 {
		t.Fatalf("mirror8 orbit of cell 1 = %v, want 8 cells", got)
	}

	// Representatives cover the grid exactly once per orbit.
	for s := domain.SymmNone; s <= domain.SymmMirror8; s++ {
		seen := make(map[int]bool)
		for _, rep := range orbitReps(s, 4) {
			for _, c := range orbit(s, 4, rep) {
				if seen[c] {
					t.Fatalf("symmetry %d: cell %d in two orbits", s, c)
				}
				seen[c] = true
			}
		}
		if len(seen) != 16 {
			t.Fatalf("symmetry %d: orbits cover %d of 16 cells", s, len(seen))
		}
	}
}

func TestReduceCluesMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	params := domain.Params{C: 3, R: 3, Symm: domain.SymmNone, Diff: domain.Basic}
	layout := region.Regular(3, 3)
	sol, ok := fillGrid(params, layout, rng)
	if !ok {
		t.Fatal("fillGrid gave up")
	}
	grid, _, err := reduceClues(context.Background(), params, layout, sol, rng)
	if err != nil {
		t.Fatal(err)
	}

	prob := &solver.Problem{Params: params, Layout: layout, Grid: grid.Clone()}
	res, _, err := solver.Grade(context.Background(), prob, params.Diff, params.KDiff)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.Solved {
		t.Fatalf("reduced puzzle grades %s", res.Outcome)
	}

	// Removal is monotonic, so no clue the reducer kept is redundant:
	// stripping any one more must push the puzzle past the ceiling.
	for cell, n := range grid {
		if n == 0 {
			continue
		}
		stripped := grid.Clone()
		stripped[cell] = 0
		prob := &solver.Problem{Params: params, Layout: layout, Grid: stripped}
		res, _, err := solver.Grade(context.Background(), prob, params.Diff, params.KDiff)
		if err != nil {
			t.Fatal(err)
		}
		if res.Outcome == domain.Solved {
			t.Fatalf("clue at cell %d is redundant within the ceiling", cell)
		}
	}
}

// regenerate decodes a generated puzzle and grades it from scratch.
func regenerate(t *testing.T, p *domain.Puzzle) (domain.Result, *codec.Puzzle) {
	t.Helper()
	params, err := codec.DecodeParams(p.Params)
	if err != nil {
		t.Fatalf("bad generated params %q: %v", p.Params, err)
	}
	puz, err := codec.DecodeDesc(params, p.Desc)
	if err != nil {
		t.Fatalf("bad generated desc %q: %v", p.Desc, err)
	}
	prob := &solver.Problem{Params: params, Layout: puz.Layout, Cages: puz.Cages, Grid: puz.Grid}
	res, _, err := solver.Grade(context.Background(), prob, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	return res, puz
}

func TestGeneratePlain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, st, err := New().Generate(ctx, "2x2db", 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if st.Nodes == 0 {
		t.Fatal("no grading work recorded")
	}

	res, _ := regenerate(t, p)
	if res.Outcome != domain.Solved {
		t.Fatalf("generated puzzle grades %s", res.Outcome)
	}
	if res.Diff > domain.Basic {
		t.Fatalf("generated puzzle grades %s, above the requested ceiling", res.Diff)
	}
	sol, err := codec.DecodeMove(4, p.Solution)
	if err != nil {
		t.Fatalf("bad solution string %q: %v", p.Solution, err)
	}
	for i := range sol {
		if res.Grid[i] != sol[i] {
			t.Fatalf("cell %d: solver found %d, generator recorded %d", i, res.Grid[i], sol[i])
		}
	}
}

func TestGenerateSymmetricClues(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p, _, err := New().Generate(ctx, "3x3r2db", 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	_, puz := regenerate(t, p)
	for cell := 0; cell < 81; cell++ {
		opp := 80 - cell
		if puz.Fixed[cell] != puz.Fixed[opp] {
			t.Fatalf("clue mask not 2-fold symmetric at cells %d/%d", cell, opp)
		}
	}
}

func TestGenerateJigsaw(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p, _, err := New().Generate(ctx, "7jdb", 11)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	res, puz := regenerate(t, p)
	if res.Outcome != domain.Solved {
		t.Fatalf("generated jigsaw grades %s", res.Outcome)
	}
	if puz.Layout.Rectangular {
		t.Fatal("jigsaw puzzle decoded with a rectangular layout")
	}
}

func TestGenerateKiller(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	p, _, err := New().Generate(ctx, "3x3kdu", 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	res, puz := regenerate(t, p)
	if res.Outcome != domain.Solved {
		t.Fatalf("generated killer grades %s", res.Outcome)
	}
	if puz.Cages == nil {
		t.Fatal("killer puzzle decoded without cages")
	}
	// Clue cells are empty in killer puzzles; the cages carry everything.
	for cell, fixed := range puz.Fixed {
		if fixed {
			t.Fatalf("killer puzzle has a grid clue at cell %d", cell)
		}
	}
	sol, err := codec.DecodeMove(9, p.Solution)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < puz.Cages.NumCages(); k++ {
		sum := 0
		for _, c := range puz.Cages.Cells[k] {
			sum += int(sol[c])
		}
		if sum != puz.Cages.Sums[k] {
			t.Fatalf("cage %d sums to %d, clue says %d", k, sum, puz.Cages.Sums[k])
		}
	}
}

func TestGenerateCagesPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	layout := region.Regular(3, 3)
	params := domain.Params{C: 3, R: 3, Killer: true, Diff: domain.Unreasonable, KDiff: domain.CageSums}
	sol, ok := fillGrid(params, layout, rng)
	if !ok {
		t.Fatal("fillGrid gave up")
	}

	cages, res, _, err := generateCages(context.Background(), params, layout, sol, rng)
	if err != nil {
		t.Fatal(err)
	}
	if cages == nil {
		t.Fatalf("cage generation failed: %s", res.Outcome)
	}
	for id, cells := range cages.Cells {
		var seen uint32
		sum := 0
		for _, c := range cells {
			bit := uint32(1) << (sol[c] - 1)
			if seen&bit != 0 {
				t.Fatalf("cage %d repeats digit %d", id, sol[c])
			}
			seen |= bit
			sum += int(sol[c])
		}
		if sum != cages.Sums[id] {
			t.Fatalf("cage %d: sum %d, clue %d", id, sum, cages.Sums[id])
		}
	}
}
