package fraction

import "math"

// int64 arithmetic reporting overflow instead of wrapping.

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func negInt64(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

// lcmInt64 returns LCM(a, b) for positive a and b.
func lcmInt64(a, b int64) (int64, bool) {
	return mulInt64(a/GCD(a, b), b)
}

// powInt64 raises base to a non-negative exponent by square-and-multiply.
func powInt64(base int64, exp uint64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mulInt64(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt64(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// floorDivMod returns the quotient rounded toward negative infinity and the
// matching remainder, which has the sign of d.
func floorDivMod(n, d int64) (q, r int64) {
	q, r = n/d, n%d
	if r != 0 && (r < 0) != (d < 0) {
		q--
		r += d
	}
	return q, r
}
