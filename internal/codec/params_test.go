package codec

import (
	"testing"

	"svw.info/latinsq/internal/domain"
)

func TestDecodeParams(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Params
	}{
		{"3x3", domain.Params{C: 3, R: 3, Symm: domain.SymmRot2, Diff: domain.Basic, KDiff: domain.CageGhosts}},
		{"4", domain.Params{C: 4, R: 4, Symm: domain.SymmRot2, Diff: domain.Basic, KDiff: domain.CageGhosts}},
		{"3x2", domain.Params{C: 3, R: 2, Symm: domain.SymmRot2, Diff: domain.Basic, KDiff: domain.CageGhosts}},
		{"9j", domain.Params{C: 9, R: 1, Jigsaw: true, Symm: domain.SymmRot2, Diff: domain.Basic, KDiff: domain.CageGhosts}},
		{"3x3xdu", domain.Params{C: 3, R: 3, XType: true, Symm: domain.SymmRot2, Diff: domain.Unreasonable, KDiff: domain.CageSums}},
		{"3x3kdt", domain.Params{C: 3, R: 3, Killer: true, Symm: domain.SymmRot2, Diff: domain.Trivial, KDiff: domain.CageSingles}},
		{"3x3m8di", domain.Params{C: 3, R: 3, Symm: domain.SymmMirror8, Diff: domain.Intermediate, KDiff: domain.CageMinMax}},
		{"3x3m2dda", domain.Params{C: 3, R: 3, Symm: domain.SymmMirror2D, Diff: domain.Advanced, KDiff: domain.CageSums}},
		{"3x3ade", domain.Params{C: 3, R: 3, Symm: domain.SymmNone, Diff: domain.Extreme, KDiff: domain.CageSums}},
		{"3x3r4db", domain.Params{C: 3, R: 3, Symm: domain.SymmRot4, Diff: domain.Basic, KDiff: domain.CageGhosts}},
	}
	for _, tc := range cases {
		got, err := DecodeParams(tc.in)
		if err != nil {
			t.Fatalf("DecodeParams(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("DecodeParams(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParamsRoundTrip(t *testing.T) {
	for _, s := range []string{"3x3", "9j", "3x3x", "3x3kdu", "2x2adt", "4x3m4ddi"} {
		p, err := DecodeParams(s)
		if err != nil {
			t.Fatalf("DecodeParams(%q): %v", s, err)
		}
		enc := EncodeParams(p)
		p2, err := DecodeParams(enc)
		if err != nil {
			t.Fatalf("re-decode %q (from %q): %v", enc, s, err)
		}
		if p != p2 {
			t.Fatalf("%q -> %q: params changed: %+v vs %+v", s, enc, p, p2)
		}
	}
}

func TestDecodeParamsErrors(t *testing.T) {
	cases := []string{
		"",       // no dimensions
		"x3",     // missing leading size
		"3x",     // missing second dimension
		"1x3",    // block dimension too small
		"2j",     // jigsaw too small
		"3x3q",   // unknown flag
		"3x3d",   // missing difficulty code
		"3x3dz",  // unknown difficulty code
		"3x3r3",  // unknown rotation symmetry
		"3x3m5",  // unknown mirror symmetry
		"99x99j", // jigsaw with explicit second dimension keeps trailing junk
	}
	for _, s := range cases {
		if _, err := DecodeParams(s); err == nil {
			t.Fatalf("DecodeParams(%q) accepted bad input", s)
		}
	}
}
