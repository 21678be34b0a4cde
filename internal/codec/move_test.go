package codec

import (
	"testing"

	"svw.info/latinsq/internal/domain"
)

func TestMoveRoundTrip(t *testing.T) {
	grid := domain.Grid{1, 2, 3, 4, 3, 4, 1, 2, 2, 1, 4, 3, 4, 3, 2, 1}
	move := EncodeMove(grid)
	if move[0] != 'S' {
		t.Fatalf("move %q does not start with S", move)
	}
	back, err := DecodeMove(4, move)
	if err != nil {
		t.Fatalf("DecodeMove(%q): %v", move, err)
	}
	for i := range grid {
		if back[i] != grid[i] {
			t.Fatalf("cell %d: got %d, want %d", i, back[i], grid[i])
		}
	}
}

func TestDecodeMoveErrors(t *testing.T) {
	cases := []string{
		"",          // empty
		"1,2,3,4",   // missing S
		"S1,2,3",    // wrong length
		"S1,2,3,5",  // digit out of range
		"S1,2,3,0",  // zero digit
		"S1,2,3,xy", // not a number
	}
	for _, s := range cases {
		if _, err := DecodeMove(2, s); err == nil {
			t.Fatalf("DecodeMove(2, %q) accepted bad input", s)
		}
	}
}
