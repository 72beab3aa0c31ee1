package rational

import "errors"

// Sentinel errors for rational operations. Callers match them with
// errors.Is; operations never panic on user input.
var (
	// ErrZeroDenominator indicates an attempt to construct a value with
	// denominator zero. The input is rejected, never coerced.
	ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

	// ErrOverflow indicates a result magnitude that does not fit int64.
	// Values are fixed-width by design; overflow is a hard error, not a wrap.
	ErrOverflow = errors.New("rational: value overflows int64")

	// ErrDivisionByZero indicates division by a zero value (Div, Inv).
	ErrDivisionByZero = errors.New("rational: division by zero")
)
