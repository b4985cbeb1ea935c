package fraction

import (
	"fmt"
	"math/big"
)

// Frac is a rational number with int64 numerator and denominator.
//
// The denominator is always positive; the sign lives in the numerator.
// Values are not kept in lowest terms: Numerator and Denominator return
// exactly what construction or arithmetic produced. The denominator is stored
// biased by 1, so the zero value is 0/1.
//
// Frac has value semantics. No method modifies its receiver.
type Frac struct {
	num  int64
	den1 int64 // denominator - 1
}

// NewFrac returns numerator/denominator. A negative denominator moves its
// sign to the numerator. It fails with ErrZeroDenominator if denominator is 0.
func NewFrac(numerator, denominator int64) (Frac, error) {
	return newFrac("new", numerator, denominator)
}

// MustFrac is like NewFrac but panics on error.
func MustFrac(numerator, denominator int64) Frac {
	f, err := NewFrac(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// Int returns n/1.
func Int(n int64) Frac {
	return Frac{num: n}
}

func newFrac(op string, top, bottom int64) (Frac, error) {
	if bottom == 0 {
		return Frac{}, opError(op, ErrZeroDenominator)
	}
	if bottom < 0 {
		var ok bool
		if top, ok = negInt64(top); !ok {
			return Frac{}, overflow(op)
		}
		if bottom, ok = negInt64(bottom); !ok {
			return Frac{}, overflow(op)
		}
	}
	return Frac{num: top, den1: bottom - 1}, nil
}

func (f Frac) Numerator() int64 {
	return f.num
}

func (f Frac) Denominator() int64 {
	return f.den1 + 1
}

// Reduced returns f in lowest terms.
func (f Frac) Reduced() Frac {
	// 約分
	den := f.Denominator()
	g := GCD(f.num, den)
	return Frac{num: f.num / g, den1: den/g - 1}
}

// String returns the reduced form of f as "num/den".
func (f Frac) String() string {
	r := f.Reduced()
	return fmt.Sprintf("%d/%d", r.num, r.Denominator())
}

// MixedParts splits the reduced form of f into an integer part and a proper
// remainder, such that f == whole + remainder/den. The whole part is rounded
// toward negative infinity, so remainder is never negative.
func (f Frac) MixedParts() (whole, remainder, den int64) {
	r := f.Reduced()
	den = r.Denominator()
	whole, remainder = floorDivMod(r.num, den)
	return whole, remainder, den
}

// MixedNumber renders MixedParts as "whole=<w> remainder=<r>/<den>", or
// "whole=<w> remainder=0" when f is an integer.
func (f Frac) MixedNumber() string {
	whole, remainder, den := f.MixedParts()
	if remainder == 0 {
		return fmt.Sprintf("whole=%d remainder=0", whole)
	}
	return fmt.Sprintf("whole=%d remainder=%d/%d", whole, remainder, den)
}

func (f Frac) Float() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// Sign returns -1, 0 or 1.
func (f Frac) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	}
	return 0
}

// Equal reports whether f and n denote the same rational value, whatever
// their stored terms (1/2 equals 2/4).
func (f Frac) Equal(n Frac) bool {
	l, r := cross(f, n)
	return l.Cmp(r) == 0
}

// Cmp returns -1 if f < n, 0 if f == n and 1 if f > n.
func (f Frac) Cmp(n Frac) int {
	l, r := cross(f, n)
	return l.Cmp(r)
}

// cross returns f.num*n.den and n.num*f.den. Both denominators are positive,
// so comparing the products orders the values. Computed on big.Int to stay
// exact for any int64 input.
func cross(f, n Frac) (*big.Int, *big.Int) {
	l := new(big.Int).Mul(big.NewInt(f.num), big.NewInt(n.Denominator()))
	r := new(big.Int).Mul(big.NewInt(n.num), big.NewInt(f.Denominator()))
	return l, r
}
