package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratmat/rational"
)

// Pair is a raw (numerator, denominator) element awaiting
// canonicalization. It is the literal building block for FromPairs,
// PushRow and PushCol; the container never stores Pairs, only the
// canonical rational.Rational each one reduces to.
type Pair struct {
	Num int64 // raw numerator, any sign
	Den int64 // raw denominator, must be non-zero
}

// Matrix is a row-major container of canonical rational values.
// All rows have identical length once the matrix is non-empty; an
// empty matrix (zero rows) is valid and has column count 0 until the
// first row arrives. Entries are immutable values, so rows returned to
// callers are defensive copies and clones never alias.
//
// Matrix performs no internal locking; concurrent appends on one
// instance must be serialized by the caller.
type Matrix struct {
	rows [][]rational.Rational
}

// New returns an empty matrix (zero rows, zero columns).
func New() *Matrix {
	return &Matrix{}
}

// FromPairs builds a matrix in bulk from nested raw data, one inner
// slice per row. Every element is canonicalized and every row length
// is checked against the first row. Construction is whole-or-nothing:
// on ErrRowLength or any element failure no matrix is returned.
// Building via FromPairs is equivalent to New followed by one PushRow
// per inner slice. Complexity: O(total element count).
func FromPairs(rows [][]Pair) (*Matrix, error) {
	m := New()
	if len(rows) == 0 {
		return m, nil
	}

	cols := len(rows[0])
	built := make([][]rational.Rational, 0, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrRowLength)
		}
		canonical, err := canonicalizeRow(row, i)
		if err != nil {
			return nil, err
		}
		built = append(built, canonical)
	}
	m.rows = built

	return m, nil
}

// RowCount returns the number of rows. Complexity: O(1).
func (m *Matrix) RowCount() int {
	return len(m.rows)
}

// ColCount returns the number of columns, 0 for an empty matrix.
// Complexity: O(1).
func (m *Matrix) ColCount() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// PushRow canonicalizes row and appends it. When the matrix is
// non-empty the row length must equal the established column count
// (ErrRowLength otherwise); element failures propagate from rational
// construction. The append is atomic: on any failure the matrix is
// left exactly as it was. Complexity: O(len(row)).
func (m *Matrix) PushRow(row []Pair) error {
	if len(m.rows) > 0 && len(row) != len(m.rows[0]) {
		return fmt.Errorf("matrix: pushed row has %d columns, want %d: %w",
			len(row), len(m.rows[0]), ErrRowLength)
	}
	// Canonicalize into a fresh slice first; commit only on full success.
	canonical, err := canonicalizeRow(row, len(m.rows))
	if err != nil {
		return err
	}
	m.rows = append(m.rows, canonical)

	return nil
}

// PushCol canonicalizes col and appends it as a new rightmost column.
// When the matrix is non-empty the column length must equal the row
// count (ErrColLength otherwise); on an empty matrix each element
// seeds its own single-entry row, producing a len(col)×1 matrix.
// The append is atomic: on any failure the matrix is left exactly as
// it was. Complexity: O(len(col)).
func (m *Matrix) PushCol(col []Pair) error {
	if len(m.rows) > 0 && len(col) != len(m.rows) {
		return fmt.Errorf("matrix: pushed column has %d entries, want %d: %w",
			len(col), len(m.rows), ErrColLength)
	}
	canonical := make([]rational.Rational, len(col))
	for i, p := range col {
		v, err := rational.New(p.Num, p.Den)
		if err != nil {
			return fmt.Errorf("matrix: element (%d,%d): %w", i, m.ColCount(), err)
		}
		canonical[i] = v
	}

	// Empty matrix: the column becomes the first column of new rows.
	if len(m.rows) == 0 {
		rows := make([][]rational.Rational, len(canonical))
		for i, v := range canonical {
			rows[i] = []rational.Rational{v}
		}
		m.rows = rows

		return nil
	}

	for i, v := range canonical {
		m.rows[i] = append(m.rows[i], v)
	}

	return nil
}

// At returns the entry at (row, col) or ErrOutOfRange. Never panics.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	if row < 0 || row >= len(m.rows) {
		return rational.Rational{}, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= len(m.rows[row]) {
		return rational.Rational{}, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Row returns a defensive copy of row i, or ErrOutOfRange.
// Complexity: O(ColCount).
func (m *Matrix) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]rational.Rational, len(m.rows[i]))
	copy(out, m.rows[i])

	return out, nil
}

// Equal reports whether m and other have the same shape and
// mathematically equal entries. Entries are canonical, so this is
// plain structural comparison — (2,4) rows equal (1,2) rows, and
// (7,-8) entries equal (-7,8) entries. A nil argument is only equal
// to a nil receiver. Complexity: O(total element count).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if len(m.rows[i]) != len(other.rows[i]) {
			return false
		}
		for j := range m.rows[i] {
			if m.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy; mutations of either matrix never affect
// the other. Complexity: O(total element count).
func (m *Matrix) Clone() *Matrix {
	if len(m.rows) == 0 {
		return New()
	}
	rows := make([][]rational.Rational, len(m.rows))
	for i, row := range m.rows {
		rows[i] = make([]rational.Rational, len(row))
		copy(rows[i], row)
	}

	return &Matrix{rows: rows}
}

// String renders rows as "[a, b, c]" lines for diagnostics.
// Implements fmt.Stringer. Not intended for hot paths.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString("[")
		for j, v := range row {
			b.WriteString(v.String())
			if j+1 < len(row) {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// canonicalizeRow reduces every pair of raw into canonical values,
// reporting the failing coordinate. rowIdx is only used for error
// context. Returns a freshly allocated slice so callers can commit it
// atomically.
func canonicalizeRow(raw []Pair, rowIdx int) ([]rational.Rational, error) {
	out := make([]rational.Rational, len(raw))
	for j, p := range raw {
		v, err := rational.New(p.Num, p.Den)
		if err != nil {
			return nil, fmt.Errorf("matrix: element (%d,%d): %w", rowIdx, j, err)
		}
		out[j] = v
	}

	return out, nil
}
