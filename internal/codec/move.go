package codec

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/latinsq/internal/domain"
)

// EncodeMove writes the solve move string: "S" followed by the full grid
// in row-major order, comma-separated. This is the only move type the
// engine emits.
func EncodeMove(grid domain.Grid) string {
	var b strings.Builder
	b.WriteByte('S')
	for i, v := range grid {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// DecodeMove parses a solve move string for a grid of the given order.
func DecodeMove(cr int, move string) (domain.Grid, error) {
	if len(move) == 0 || move[0] != 'S' {
		return nil, fmt.Errorf("move: expected leading 'S'")
	}
	fields := strings.Split(move[1:], ",")
	if len(fields) != cr*cr {
		return nil, fmt.Errorf("move: got %d cells, want %d", len(fields), cr*cr)
	}
	grid := make(domain.Grid, cr*cr)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > cr {
			return nil, fmt.Errorf("move: bad digit %q at cell %d", f, i)
		}
		grid[i] = uint8(v)
	}
	return grid, nil
}
