// Package ratmat is a small, exact linear-algebra foundation: rational
// numbers that are canonical by construction, and rectangular matrices
// built from them.
//
// 🚀 What is ratmat?
//
//	A zero-dependency value-type library that brings together:
//		• rational/ — an immutable Rational with a unique reduced form:
//		  gcd-reduced, positive denominator, one representation of zero
//		• matrix/   — a row-major rational matrix with row-by-row and
//		  bulk construction, shape validation and structural equality
//
// ✨ Why choose ratmat?
//
//   - Exactness first — no floating point, no silent rounding
//   - Equality is plain field comparison — canonicalization happens once,
//     in the constructor, never at compare time
//   - Rock-solid error contract — sentinel errors, errors.Is friendly,
//     no panics on user input
//   - Pure Go — no cgo, no hidden deps
//
// Quick example:
//
//	2/4 and 1/2 construct the same value; 7/-8 and -7/8 construct the
//	same value; a matrix built row by row equals the matrix built in
//	bulk from the same (even unreduced) data.
//
// Dive into the rational and matrix package docs for the full API.
//
//	go get github.com/katalvlaran/ratmat
package ratmat
