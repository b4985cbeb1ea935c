package fraction

import "math/big"

var bigOne = big.NewInt(1)

func (f Frac) IsZero() bool {
	return f.num == 0
}

// IsInteger reports whether the numerator is a multiple of the denominator
// (8/4, 3/1, 2/2).
func (f Frac) IsInteger() bool {
	return f.num%f.Denominator() == 0
}

// IsProper reports whether |f| < 1.
func (f Frac) IsProper() bool {
	return absUint64(f.num) < uint64(f.Denominator())
}

// IsUnit reports whether f reduces to 1/1, that is whether its value is
// exactly 1. For the classical unit fraction (numerator 1) see
// IsUnitFraction.
func (f Frac) IsUnit() bool {
	r := f.Reduced()
	return r.num == 1 && r.Denominator() == 1
}

// IsUnitFraction reports whether f reduces to 1/n for some n > 0.
func (f Frac) IsUnitFraction() bool {
	return f.Reduced().num == 1
}

// IsAdjacentTo reports whether f and n differ by a unit fraction, that is
// whether |f.num*n.den - n.num*f.den| == 1.
func (f Frac) IsAdjacentTo(n Frac) bool {
	l, r := cross(f, n)
	diff := l.Sub(l, r)
	den := new(big.Int).Mul(big.NewInt(f.Denominator()), big.NewInt(n.Denominator()))
	return diff.Abs(diff).Cmp(bigOne) == 0 && den.Sign() > 0
}

func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
