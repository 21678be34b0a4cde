package region

import "testing"

func TestNewCagesValidation(t *testing.T) {
	if _, err := NewCages(3, make([]int, 4), nil); err == nil {
		t.Fatal("short cell map accepted")
	}
	// One cage covering 4 cells on a cr=3 grid exceeds the size cap.
	big := []int{
		0, 0, 1,
		0, 0, 1,
		2, 2, 1,
	}
	if _, err := NewCages(3, big, nil); err == nil {
		t.Fatal("oversized cage accepted")
	}
	if _, err := NewCages(3, []int{0, 0, 1, 0, 2, 1, 3, 3, 4}, []int{5}); err == nil {
		t.Fatal("mismatched sums length accepted")
	}
}

func TestCagesMerge(t *testing.T) {
	ids := []int{
		0, 0, 1, 1,
		2, 2, 3, 3,
		4, 4, 5, 5,
		6, 6, 7, 7,
	}
	sums := []int{3, 7, 7, 3, 4, 6, 6, 4}
	c, err := NewCages(4, ids, sums)
	if err != nil {
		t.Fatalf("NewCages: %v", err)
	}
	if !c.Adjacent(0, 2) {
		t.Fatal("vertically stacked dominoes not adjacent")
	}
	// Cells 1 and 2 touch, so the top two dominoes are adjacent too.
	if !c.Adjacent(0, 1) {
		t.Fatal("expected horizontal dominoes in the same row to be adjacent")
	}

	c.Merge(0, 2)
	if c.NumCages() != 7 {
		t.Fatalf("after merge: %d cages, want 7", c.NumCages())
	}
	id := c.CellCage[0]
	wantCells := []int{0, 1, 4, 5}
	if len(c.Cells[id]) != 4 {
		t.Fatalf("merged cage has cells %v", c.Cells[id])
	}
	for i, cell := range wantCells {
		if c.Cells[id][i] != cell {
			t.Fatalf("merged cage cells = %v, want %v", c.Cells[id], wantCells)
		}
	}
	if c.Sums[id] != 10 {
		t.Fatalf("merged sum = %d, want 10", c.Sums[id])
	}

	// Every cell still maps to a live cage after the dense renumber.
	for cell, cid := range c.CellCage {
		if cid < 0 || cid >= c.NumCages() {
			t.Fatalf("cell %d maps to stale cage %d", cell, cid)
		}
		found := false
		for _, m := range c.Cells[cid] {
			if m == cell {
				found = true
			}
		}
		if !found {
			t.Fatalf("cell %d missing from its cage %d", cell, cid)
		}
	}
}
