package codec

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/latinsq/internal/domain"
)

// EncodeParams writes the canonical parameter string:
// "<c>x<r>" (or "<n>j" for jigsaw), then "x" for diagonals, "k" for
// killer, the symmetry code and "d" plus the difficulty code.
// EncodeParams and DecodeParams round-trip.
func EncodeParams(p domain.Params) string {
	var b strings.Builder
	if p.Jigsaw {
		fmt.Fprintf(&b, "%dj", p.C)
	} else {
		fmt.Fprintf(&b, "%dx%d", p.C, p.R)
	}
	if p.XType {
		b.WriteByte('x')
	}
	if p.Killer {
		b.WriteByte('k')
	}
	b.WriteString(p.Symm.Code())
	b.WriteString("d" + p.Diff.Code())
	return b.String()
}

// DecodeParams parses a parameter string. Unspecified symmetry defaults to
// 2-fold rotation and unspecified difficulty to basic; the killer ceiling
// is derived from the main difficulty.
func DecodeParams(s string) (domain.Params, error) {
	p := domain.Params{Symm: domain.SymmRot2, Diff: domain.Basic}
	rest := s

	n, rest, err := leadingInt(rest)
	if err != nil {
		return p, fmt.Errorf("params: %w", err)
	}
	switch {
	case strings.HasPrefix(rest, "j"):
		p.Jigsaw = true
		p.C, p.R = n, 1
		rest = rest[1:]
	case strings.HasPrefix(rest, "x"):
		p.C = n
		p.R, rest, err = leadingInt(rest[1:])
		if err != nil {
			return p, fmt.Errorf("params: %w", err)
		}
	default:
		p.C, p.R = n, n
	}

	for len(rest) > 0 {
		switch rest[0] {
		case 'x':
			p.XType = true
			rest = rest[1:]
		case 'k':
			p.Killer = true
			rest = rest[1:]
		case 'a':
			p.Symm = domain.SymmNone
			rest = rest[1:]
		case 'r':
			var k int
			k, rest, err = leadingInt(rest[1:])
			if err != nil {
				return p, fmt.Errorf("params: rotation symmetry: %w", err)
			}
			switch k {
			case 2:
				p.Symm = domain.SymmRot2
			case 4:
				p.Symm = domain.SymmRot4
			default:
				return p, fmt.Errorf("params: unknown rotation symmetry r%d", k)
			}
		case 'm':
			var k int
			k, rest, err = leadingInt(rest[1:])
			if err != nil {
				return p, fmt.Errorf("params: mirror symmetry: %w", err)
			}
			diag := strings.HasPrefix(rest, "d")
			if diag {
				rest = rest[1:]
			}
			switch {
			case k == 2 && !diag:
				p.Symm = domain.SymmMirror2
			case k == 2 && diag:
				p.Symm = domain.SymmMirror2D
			case k == 4 && !diag:
				p.Symm = domain.SymmMirror4
			case k == 4 && diag:
				p.Symm = domain.SymmMirror4D
			case k == 8 && !diag:
				p.Symm = domain.SymmMirror8
			default:
				return p, fmt.Errorf("params: unknown mirror symmetry m%d", k)
			}
		case 'd':
			if len(rest) < 2 {
				return p, fmt.Errorf("params: missing difficulty code")
			}
			d, ok := domain.DifficultyFromCode(rest[1])
			if !ok {
				return p, fmt.Errorf("params: unknown difficulty code %q", rest[1])
			}
			p.Diff = d
			rest = rest[2:]
		default:
			return p, fmt.Errorf("params: unexpected character %q", rest[0])
		}
	}

	p.KDiff = killerCeiling(p.Diff)
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// killerCeiling maps the main difficulty request onto the cage-reasoning
// axis used when generating killer puzzles.
func killerCeiling(d domain.Difficulty) domain.KillerDifficulty {
	switch {
	case d <= domain.Trivial:
		return domain.CageSingles
	case d == domain.Basic:
		return domain.CageGhosts
	case d == domain.Intermediate:
		return domain.CageMinMax
	default:
		return domain.CageSums
	}
}

func leadingInt(s string) (int, string, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, fmt.Errorf("expected a number at %q", s)
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, err
	}
	return n, s[i:], nil
}
