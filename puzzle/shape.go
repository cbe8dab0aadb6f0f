package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadBlueprint is returned when a blueprint is empty or ragged.
var ErrBadBlueprint = errors.New("blueprint must be a non-empty rectangle")

// Blueprint is a rectangular boolean matrix indexed [row][col]. A true entry
// marks an occupied offset relative to the shape's top-left anchor.
type Blueprint [][]bool

// ParseBlueprint builds a blueprint from rows of '#' (occupied) and '.' (empty).
func ParseBlueprint(rows ...string) (Blueprint, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadBlueprint
	}

	width := len(rows[0])
	b := make(Blueprint, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), width, ErrBadBlueprint)
		}
		b[i] = make([]bool, width)
		for j, ch := range row {
			switch ch {
			case '#':
				b[i][j] = true
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q: %w", i, ch, ErrBadBlueprint)
			}
		}
	}
	return b, nil
}

// MustParseBlueprint is like ParseBlueprint but panics on malformed input.
func MustParseBlueprint(rows ...string) Blueprint {
	b, err := ParseBlueprint(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the blueprint height.
func (b Blueprint) Rows() int {
	return len(b)
}

// Cols returns the blueprint width.
func (b Blueprint) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Count returns the number of occupied offsets.
func (b Blueprint) Count() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the blueprint.
func (b Blueprint) Clone() Blueprint {
	out := make(Blueprint, len(b))
	for i := range b {
		out[i] = make([]bool, len(b[i]))
		copy(out[i], b[i])
	}
	return out
}

// Equal reports whether both blueprints have the same dimensions and contents.
func (b Blueprint) Equal(other Blueprint) bool {
	if b.Rows() != other.Rows() || b.Cols() != other.Cols() {
		return false
	}
	for i := range b {
		for j := range b[i] {
			if b[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the blueprint with '#' and '.' rows separated by newlines.
func (b Blueprint) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns the blueprint turned 90 degrees clockwise. An R×C input
// yields a C×R output; the input is left untouched.
func Rotate(b Blueprint) Blueprint {
	rows, cols := b.Rows(), b.Cols()
	rotated := make(Blueprint, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = b[rows-1-j][i]
		}
	}
	return rotated
}

// RotateN applies Rotate n times, modulo 4. Negative counts rotate the
// other way.
func RotateN(b Blueprint, n int) Blueprint {
	n = ((n % 4) + 4) % 4
	out := b.Clone()
	for range n {
		out = Rotate(out)
	}
	return out
}
