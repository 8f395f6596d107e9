// Package ratio implements exact rational arithmetic for dimension exponents.
//
// Exponents of physical dimensions are tiny rationals (1, -2, 1/2, 3/2);
// Rat keeps them as a normalized value type so power maps stay comparable
// and allocation-free.
package ratio

import (
	"fmt"
	"math"
	"strconv"
)

// Rat is an exact rational number. It is always stored in lowest terms with
// a positive denominator, so two equal rationals compare equal with ==.
// The zero value behaves as 0.
type Rat struct {
	num, den int64
}

// New returns num/den reduced to lowest terms. It panics on a zero
// denominator.
func New(num, den int64) Rat {
	if den == 0 {
		panic("ratio: zero denominator")
	}

	if den < 0 {
		num, den = -num, -den
	}

	if num == 0 {
		return Rat{}
	}

	g := gcd(abs(num), den)

	return Rat{num / g, den / g}
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	if n == 0 {
		return Rat{}
	}

	return Rat{n, 1}
}

// FromFloat converts a float64 to its exact rational value. Every finite
// float is a dyadic rational; conversion fails only for NaN, infinities,
// and magnitudes whose exact form does not fit int64.
func FromFloat(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("ratio: cannot represent %v", f)
	}

	if f == math.Trunc(f) && math.Abs(f) < 1<<62 {
		return FromInt(int64(f)), nil
	}

	frac, exp := math.Frexp(f)
	// Scale the 53-bit mantissa up to an integer.
	num := int64(frac * (1 << 53))
	exp -= 53

	if exp > 0 {
		if exp > 10 || abs(num)>>(62-exp) != 0 {
			return Rat{}, fmt.Errorf("ratio: %v overflows exact conversion", f)
		}

		return New(num<<exp, 1), nil
	}

	if exp < -62 {
		return Rat{}, fmt.Errorf("ratio: %v overflows exact conversion", f)
	}

	return New(num, 1<<uint(-exp)), nil
}

// Num returns the normalized numerator, carrying the sign.
func (r Rat) Num() int64 { return r.num }

// Den returns the normalized denominator, always positive.
func (r Rat) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// IsZero returns true if the rational equals 0.
func (r Rat) IsZero() bool { return r.num == 0 }

// IsInt returns true if the rational is a whole number.
func (r Rat) IsInt() bool { return r.Den() == 1 }

// Sign returns -1, 0, or +1 according to the sign of the rational.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	return New(r.num*other.Den()+other.num*r.Den(), r.Den()*other.Den())
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return New(r.num*other.Den()-other.num*r.Den(), r.Den()*other.Den())
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return New(r.num*other.num, r.Den()*other.Den())
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{-r.num, r.Den()}
}

// Cmp compares r and other, returning -1, 0, or +1.
func (r Rat) Cmp(other Rat) int {
	lhs := r.num * other.Den()
	rhs := other.num * r.Den()

	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Float returns the nearest float64 approximation.
func (r Rat) Float() float64 {
	return float64(r.num) / float64(r.Den())
}

// String returns the rational as "n" or "n/d".
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
