// Package rational implements an exact rational number as an immutable
// value type with a unique canonical form.
//
// 🚀 What is a canonical Rational?
//
//	Every constructed value satisfies, by construction:
//	  • denominator > 0 (the sign, if any, lives in the numerator)
//	  • gcd(|numerator|, |denominator|) == 1 (fully reduced)
//	  • zero is always 0/1 (a single representation of zero)
//
//	Because the representation is unique, two Rationals are
//	mathematically equal exactly when their fields are equal — the
//	== operator, Equal, and map keys all agree for free.
//
// ✨ Key features:
//   - New(n, d) canonicalizes any input pair; d == 0 is rejected with
//     ErrZeroDenominator, never coerced
//   - fixed-width int64 arithmetic with checked overflow (ErrOverflow)
//     instead of silent wraparound
//   - exact total ordering via Cmp — 128-bit cross products, no
//     precision loss, no overflow
//   - checked Add/Sub/Mul/Div/Neg/Inv/Abs, each returning a fresh
//     canonical value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ratmat/rational"
//
//	half, err := rational.New(2, 4)   // 1/2
//	same, err := rational.New(-3, -6) // 1/2 — identical value
//	half == same                      // true
//
// All operations are pure and O(log min(|n|, |d|)) (the gcd); the type
// is safe to copy, compare, and share across goroutines.
package rational
