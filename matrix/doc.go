// Package matrix provides a row-major matrix of exact rational values
// with validated construction and structural equality.
//
// The matrix package provides:
//
//   - Incremental construction: start empty with New, append rows
//     (PushRow) or columns (PushCol) of raw numerator/denominator
//     pairs; each element is canonicalized on entry.
//   - Bulk construction from nested literal data (FromPairs), validated
//     whole-or-nothing: a single bad pair or ragged row constructs
//     nothing.
//   - The rectangular invariant: once the matrix is non-empty, every
//     row has the same length; violating appends are rejected with
//     ErrRowLength / ErrColLength and leave the matrix untouched.
//   - Equal, which compares shape and then entries — and because every
//     entry is a canonical rational.Rational, two matrices compare
//     equal exactly when their entries are mathematically equal
//     fractions, regardless of how each was originally written.
//
// Appends are atomic but not synchronized; callers sharing one matrix
// across goroutines must serialize access themselves.
//
// See the examples in this package for usage patterns.
package matrix
