package rational

import (
	"math"
	"math/bits"
	"strconv"
)

// Rational is an exact fraction of two int64 values in canonical form:
// den > 0, gcd(|num|, den) == 1, and zero is always stored as 0/1.
// Canonicalization is a constructor-time invariant, so mathematical
// equality coincides with structural equality (==) for every pair of
// constructed values, and Rational is usable as a map key.
//
// Rational is immutable; every operation returns a fresh value.
// The zero value of the type is not a valid number — construct values
// with New, FromInt, MustNew or Zero.
type Rational struct {
	num int64 // signed numerator; carries the sign of the value
	den int64 // denominator, always > 0 after construction
}

// New constructs the canonical Rational num/den.
// Returns ErrZeroDenominator when den == 0 and ErrOverflow when the
// reduced value cannot be re-expressed in int64 after sign
// normalization (only possible at the math.MinInt64 magnitude corner).
// Complexity: O(log min(|num|, |den|)) for the gcd.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	// Single canonical representation of zero.
	if num == 0 {
		return Rational{num: 0, den: 1}, nil
	}

	// Work on unsigned magnitudes so math.MinInt64 is handled exactly.
	neg := (num < 0) != (den < 0)
	n := magnitude(num)
	d := magnitude(den)
	g := gcd(n, d)
	n /= g
	d /= g

	// A canonical denominator must be a positive int64.
	if d > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	if neg {
		// Magnitude 1<<63 is representable only as math.MinInt64.
		if n == 1<<63 {
			return Rational{num: math.MinInt64, den: int64(d)}, nil
		}

		return Rational{num: -int64(n), den: int64(d)}, nil
	}
	if n > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}

	return Rational{num: int64(n), den: int64(d)}, nil
}

// MustNew is New that panics on error. Intended for literals in tests
// and table-driven setup where the inputs are known to be valid.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// Zero returns the canonical zero value 0/1.
func Zero() Rational {
	return Rational{num: 0, den: 1}
}

// FromInt returns the canonical Rational n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Num returns the signed numerator of the canonical form.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator of the canonical form (always positive).
func (r Rational) Den() int64 { return r.den }

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return r.num < 0 }

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool { return r.num > 0 }

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and other are mathematically equal.
// Thanks to the canonical form this is plain field comparison; the ==
// operator gives the same answer.
func (r Rational) Equal(other Rational) bool {
	return r == other
}

// Cmp compares r and other, returning -1 when r < other, 0 when equal
// and +1 when r > other. The comparison cross-multiplies in 128 bits
// (bits.Mul64 on magnitudes), so it is exact for every pair of values
// and never overflows.
func (r Rational) Cmp(other Rational) int {
	sr, so := r.Sign(), other.Sign()
	if sr != so {
		if sr < so {
			return -1
		}

		return 1
	}
	if sr == 0 {
		return 0
	}

	// Same non-zero sign: compare |r.num|*other.den against
	// |other.num|*r.den; both denominators are positive.
	hiA, loA := bits.Mul64(magnitude(r.num), uint64(other.den))
	hiB, loB := bits.Mul64(magnitude(other.num), uint64(r.den))
	var c int
	switch {
	case hiA != hiB:
		c = 1
		if hiA < hiB {
			c = -1
		}
	case loA != loB:
		c = 1
		if loA < loB {
			c = -1
		}
	}
	// For negative values a larger magnitude means a smaller number.
	if sr < 0 {
		return -c
	}

	return c
}

// Neg returns -r. Fails with ErrOverflow only for the single value
// whose numerator is math.MinInt64.
func (r Rational) Neg() (Rational, error) {
	if r.num == math.MinInt64 {
		return Rational{}, ErrOverflow
	}

	return Rational{num: -r.num, den: r.den}, nil
}

// Abs returns |r|. Fails with ErrOverflow only when the numerator is
// math.MinInt64.
func (r Rational) Abs() (Rational, error) {
	if r.num >= 0 {
		return r, nil
	}

	return r.Neg()
}

// Inv returns the reciprocal 1/r. Fails with ErrDivisionByZero when r
// is zero, and with ErrOverflow when the numerator is math.MinInt64
// (its magnitude cannot become a denominator).
// The result is already canonical: swapping preserves the reduced gcd.
func (r Rational) Inv() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if r.num == math.MinInt64 {
		return Rational{}, ErrOverflow
	}
	if r.num < 0 {
		return Rational{num: -r.den, den: -r.num}, nil
	}

	return Rational{num: r.den, den: r.num}, nil
}

// Add returns r + other, reduced to canonical form.
// Cross terms are pre-reduced by the denominator gcd to delay overflow;
// any intermediate that still exceeds int64 yields ErrOverflow.
func (r Rational) Add(other Rational) (Rational, error) {
	return r.addSub(other, false)
}

// Sub returns r - other, reduced to canonical form.
// Same overflow contract as Add.
func (r Rational) Sub(other Rational) (Rational, error) {
	return r.addSub(other, true)
}

// addSub implements Add and Sub over a common reduced denominator:
// r.num*(other.den/g) ± other.num*(r.den/g) over lcm(r.den, other.den).
func (r Rational) addSub(other Rational, subtract bool) (Rational, error) {
	g := int64(gcd(uint64(r.den), uint64(other.den))) // denominators are positive
	scaleR := other.den / g
	scaleO := r.den / g

	left, ok := mulChecked(r.num, scaleR)
	if !ok {
		return Rational{}, ErrOverflow
	}
	right, ok := mulChecked(other.num, scaleO)
	if !ok {
		return Rational{}, ErrOverflow
	}

	var num int64
	if subtract {
		num, ok = subChecked(left, right)
	} else {
		num, ok = addChecked(left, right)
	}
	if !ok {
		return Rational{}, ErrOverflow
	}
	den, ok := mulChecked(r.den, scaleR)
	if !ok {
		return Rational{}, ErrOverflow
	}

	// The lcm denominator may share a factor with the new numerator;
	// New performs the final reduction.
	return New(num, den)
}

// Mul returns r * other, reduced to canonical form.
// Factors are cross-reduced (gcd of each numerator with the opposite
// denominator) before multiplying, so overflow occurs only when the
// true result does not fit int64.
func (r Rational) Mul(other Rational) (Rational, error) {
	if r.num == 0 || other.num == 0 {
		return Zero(), nil
	}

	// gcd results here never exceed 1<<62: each is bounded by a
	// positive int64 denominator, so the int64 conversions are safe.
	gA := int64(gcd(magnitude(r.num), uint64(other.den)))
	gB := int64(gcd(magnitude(other.num), uint64(r.den)))

	num, ok := mulChecked(r.num/gA, other.num/gB)
	if !ok {
		return Rational{}, ErrOverflow
	}
	den, ok := mulChecked(r.den/gB, other.den/gA)
	if !ok {
		return Rational{}, ErrOverflow
	}

	// Cross-reduction already makes the pair coprime; New settles the
	// sign and zero invariants.
	return New(num, den)
}

// Div returns r / other. Fails with ErrDivisionByZero when other is
// zero; otherwise multiplies by the reciprocal with Mul's overflow
// contract.
func (r Rational) Div(other Rational) (Rational, error) {
	inv, err := other.Inv()
	if err != nil {
		return Rational{}, err
	}

	return r.Mul(inv)
}

// String renders the canonical form as "num/den", or just "num" for
// integer values. Implements fmt.Stringer.
func (r Rational) String() string {
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// magnitude returns |x| as uint64, exact for math.MinInt64.
func magnitude(x int64) uint64 {
	if x >= 0 {
		return uint64(x)
	}

	return uint64(-(x + 1)) + 1
}

// gcd returns the greatest common divisor by Euclid's algorithm, with
// gcd(a, 0) == a and gcd(0, b) == b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// addChecked returns a+b and reports whether the sum fits int64.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// subChecked returns a-b and reports whether the difference fits int64.
func subChecked(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}

	return d, true
}

// mulChecked returns a*b and reports whether the product fits int64.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
