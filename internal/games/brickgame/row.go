package brickgame

import "math/bits"

// Board dimensions. A Row packs one board row into a byte, so Cols is tied
// to the width of Row.
const (
	Cols = 8
	Rows = 16
)

// Row is a fixed-width bitset for one board row. Column 0 is the most
// significant bit.
type Row uint8

// FullRow has every column set.
const FullRow Row = 0xFF

// Shift moves the row dx columns to the right (negative dx moves left).
// ok is false when any set bit would fall off the field; the returned row
// is then meaningless and callers must treat the placement as illegal.
func (r Row) Shift(dx int) (shifted Row, ok bool) {
	switch {
	case dx == 0:
		return r, true
	case dx >= Cols || dx <= -Cols:
		return 0, r == 0
	case dx > 0:
		// Bits below the shift amount would drop off the right edge.
		if bits.TrailingZeros8(uint8(r)) < dx {
			return 0, false
		}
		return r >> dx, true
	default:
		if bits.LeadingZeros8(uint8(r)) < -dx {
			return 0, false
		}
		return r << -dx, true
	}
}

// Has reports whether column col is set.
func (r Row) Has(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}
	return r&(0x80>>col) != 0
}

// With returns the row with column col set.
func (r Row) With(col int) Row {
	if col < 0 || col >= Cols {
		return r
	}
	return r | 0x80>>col
}

// Full reports whether every column is set.
func (r Row) Full() bool {
	return r == FullRow
}

// Count returns the number of set columns.
func (r Row) Count() int {
	return bits.OnesCount8(uint8(r))
}

// Span returns the first and last set columns. ok is false for an empty row.
func (r Row) Span() (first, last int, ok bool) {
	if r == 0 {
		return 0, 0, false
	}
	return bits.LeadingZeros8(uint8(r)), Cols - 1 - bits.TrailingZeros8(uint8(r)), true
}

// String renders the row as '#' and '.' cells, left to right.
func (r Row) String() string {
	b := make([]byte, Cols)
	for c := range Cols {
		if r.Has(c) {
			b[c] = '#'
		} else {
			b[c] = '.'
		}
	}
	return string(b)
}
