package matrix

import "errors"

// Sentinel errors for matrix operations. Element-level failures from
// rational construction (rational.ErrZeroDenominator,
// rational.ErrOverflow) propagate unchanged and also match errors.Is.
var (
	// ErrRowLength indicates a row whose length disagrees with the
	// matrix's established column count.
	ErrRowLength = errors.New("matrix: all rows must have the same length")
	// ErrColLength indicates a column whose length disagrees with the
	// matrix's row count.
	ErrColLength = errors.New("matrix: column length must match row count")
	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
