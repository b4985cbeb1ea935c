package fraction

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
// The result is never negative, except when it is |min T|, which T cannot
// hold: GCD(math.MinInt64, 0) returns math.MinInt64.
func GCD[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The result is never negative. Overflow of T is not checked.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}
