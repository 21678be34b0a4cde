package solver

import (
	"context"
	"testing"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/region"
)

// parseGrid reads one digit per character, with '0' or '.' for empty
// cells.
func parseGrid(t *testing.T, rows ...string) domain.Grid {
	t.Helper()
	var g domain.Grid
	for _, row := range rows {
		for _, ch := range row {
			switch {
			case ch == '0' || ch == '.':
				g = append(g, 0)
			case ch >= '1' && ch <= '9':
				g = append(g, uint8(ch-'0'))
			default:
				t.Fatalf("bad grid character %q", ch)
			}
		}
	}
	return g
}

// checkLatin fails the test unless grid is completely filled and every
// row, column and block holds each digit exactly once.
func checkLatin(t *testing.T, l *region.Layout, grid domain.Grid) {
	t.Helper()
	cr := l.CR
	unit := func(name string, cells []int) {
		var seen uint32
		for _, c := range cells {
			n := grid[c]
			if n < 1 || int(n) > cr {
				t.Fatalf("%s: cell %d holds %d", name, c, n)
			}
			if seen&(1<<(n-1)) != 0 {
				t.Fatalf("%s: digit %d repeated", name, n)
			}
			seen |= 1 << (n - 1)
		}
	}
	cells := make([]int, cr)
	for i := 0; i < cr; i++ {
		for x := 0; x < cr; x++ {
			cells[x] = i*cr + x
		}
		unit("row", cells)
		for y := 0; y < cr; y++ {
			cells[y] = y*cr + i
		}
		unit("col", cells)
		unit("block", l.BlockCells[i])
	}
}

var classicClues = []string{
	"530070000",
	"600195000",
	"098000060",
	"800060003",
	"400803001",
	"700020006",
	"060000280",
	"000419005",
	"000080079",
}

var classicSolution = []string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

func TestGradeClassicPuzzle(t *testing.T) {
	p := &Problem{
		Params: domain.DefaultParams(),
		Layout: region.Regular(3, 3),
		Grid:   parseGrid(t, classicClues...),
	}
	res, st, err := Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Outcome != domain.Solved {
		t.Fatalf("outcome = %s, want solved", res.Outcome)
	}
	want := parseGrid(t, classicSolution...)
	for i := range want {
		if res.Grid[i] != want[i] {
			t.Fatalf("cell %d: got %d, want %d", i, res.Grid[i], want[i])
		}
	}
	if res.Diff >= domain.Unreasonable {
		t.Fatalf("classic puzzle graded %s; it needs no guessing", res.Diff)
	}
	t.Logf("graded %s, %d nodes in %v", res.Diff, st.Nodes, st.Duration)
}

func TestGradeSolvedGridIsTrivial(t *testing.T) {
	full := parseGrid(t,
		"1234",
		"3412",
		"2143",
		"4321",
	)
	p := &Problem{
		Params: domain.Params{C: 2, R: 2, Diff: domain.Unreasonable},
		Layout: region.Regular(2, 2),
		Grid:   full,
	}
	res, _, err := Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.Solved || res.Diff != domain.Trivial {
		t.Fatalf("got %s/%s, want solved/trivial", res.Outcome, res.Diff)
	}

	// The same grid with one blank still needs nothing beyond a block
	// single.
	blanked := full.Clone()
	blanked[5] = 0
	p.Grid = blanked
	res, _, err = Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.Solved || res.Diff != domain.Trivial {
		t.Fatalf("one blank: got %s/%s, want solved/trivial", res.Outcome, res.Diff)
	}
	if res.Grid[5] != full[5] {
		t.Fatalf("restored %d at cell 5, want %d", res.Grid[5], full[5])
	}
}

func TestGradeContradiction(t *testing.T) {
	p := &Problem{
		Params: domain.Params{C: 2, R: 2, Diff: domain.Unreasonable},
		Layout: region.Regular(2, 2),
		Grid: parseGrid(t,
			"3003",
			"0000",
			"0000",
			"0000",
		),
	}
	res, _, err := Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.OutcomeImpossible {
		t.Fatalf("outcome = %s, want impossible", res.Outcome)
	}
}

func TestGradeEmptyGrid(t *testing.T) {
	p := &Problem{
		Params: domain.Params{C: 2, R: 2, Diff: domain.Unreasonable},
		Layout: region.Regular(2, 2),
		Grid:   make(domain.Grid, 16),
	}

	// With guessing permitted the empty grid has many solutions.
	res, _, err := Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.OutcomeAmbiguous {
		t.Fatalf("outcome = %s, want ambiguous", res.Outcome)
	}

	// Without guessing the ladder stalls, which reports as impossible.
	res, _, err = Grade(context.Background(), p, domain.Basic, domain.CageGhosts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.OutcomeImpossible {
		t.Fatalf("stalled ladder outcome = %s, want impossible", res.Outcome)
	}
}

func TestGradeDiagonalConstraint(t *testing.T) {
	// Cells 0 and 10 share only the falling diagonal: different rows,
	// columns and blocks.
	clues := parseGrid(t,
		"1000",
		"0000",
		"0010",
		"0000",
	)

	plain := &Problem{
		Params: domain.Params{C: 2, R: 2, Diff: domain.Unreasonable},
		Layout: region.Regular(2, 2),
		Grid:   clues,
	}
	res, _, err := Grade(context.Background(), plain, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.OutcomeAmbiguous {
		t.Fatalf("plain outcome = %s, want ambiguous", res.Outcome)
	}

	x := &Problem{
		Params: domain.Params{C: 2, R: 2, XType: true, Diff: domain.Unreasonable},
		Layout: region.Regular(2, 2),
		Grid:   clues,
	}
	res, _, err = Grade(context.Background(), x, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != domain.OutcomeImpossible {
		t.Fatalf("diagonal outcome = %s, want impossible", res.Outcome)
	}
}

func TestGradeRecursionFindsHardPuzzles(t *testing.T) {
	// Inkala's 2012 puzzle; solvable, but famously beyond simple ladders.
	p := &Problem{
		Params: domain.DefaultParams(),
		Layout: region.Regular(3, 3),
		Grid: parseGrid(t,
			"800000000",
			"003600000",
			"070090200",
			"050007000",
			"000045700",
			"000100030",
			"001000068",
			"008500010",
			"090000400",
		),
	}
	res, st, err := Grade(context.Background(), p, domain.Unreasonable, domain.CageSums)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Outcome != domain.Solved {
		t.Fatalf("outcome = %s, want solved", res.Outcome)
	}
	checkLatin(t, p.Layout, res.Grid)
	for i, n := range p.Grid {
		if n != 0 && res.Grid[i] != n {
			t.Fatalf("clue at cell %d changed from %d to %d", i, n, res.Grid[i])
		}
	}
	t.Logf("graded %s, %d nodes in %v", res.Diff, st.Nodes, st.Duration)
}
