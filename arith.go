package fraction

// Add returns f + n over the least common multiple of both denominators.
func (f Frac) Add(n Frac) (Frac, error) {
	return f.combine("add", n, addInt64)
}

// Sub returns f - n over the least common multiple of both denominators.
func (f Frac) Sub(n Frac) (Frac, error) {
	return f.combine("sub", n, subInt64)
}

func (f Frac) combine(op string, n Frac, fn func(a, b int64) (int64, bool)) (Frac, error) {
	fd, nd := f.Denominator(), n.Denominator()
	lcm, ok := lcmInt64(fd, nd)
	if !ok {
		return Frac{}, overflow(op)
	}
	a, ok := mulInt64(f.num, lcm/fd)
	if !ok {
		return Frac{}, overflow(op)
	}
	b, ok := mulInt64(n.num, lcm/nd)
	if !ok {
		return Frac{}, overflow(op)
	}
	top, ok := fn(a, b)
	if !ok {
		return Frac{}, overflow(op)
	}
	return newFrac(op, top, lcm)
}

func (f Frac) Mul(n Frac) (Frac, error) {
	top, ok := mulInt64(f.num, n.num)
	if !ok {
		return Frac{}, overflow("mul")
	}
	bottom, ok := mulInt64(f.Denominator(), n.Denominator())
	if !ok {
		return Frac{}, overflow("mul")
	}
	return newFrac("mul", top, bottom)
}

// Div returns f / n. Dividing by a zero-valued fraction fails with
// ErrZeroDenominator.
func (f Frac) Div(n Frac) (Frac, error) {
	top, ok := mulInt64(f.num, n.Denominator())
	if !ok {
		return Frac{}, overflow("div")
	}
	bottom, ok := mulInt64(f.Denominator(), n.num)
	if !ok {
		return Frac{}, overflow("div")
	}
	return newFrac("div", top, bottom)
}

// Pow returns f raised to e, as num^e/den^e. A negative exponent raises the
// reciprocal of f to -e, so a zero f fails with ErrZeroDenominator. Any f to
// the power 0 is 1/1.
func (f Frac) Pow(e int) (Frac, error) {
	top, bottom := f.num, f.Denominator()
	var ue uint64
	if e < 0 {
		if top == 0 {
			return Frac{}, opError("pow", ErrZeroDenominator)
		}
		top, bottom = bottom, top
		ue = uint64(-(e + 1)) + 1
	} else {
		ue = uint64(e)
	}

	top, ok := powInt64(top, ue)
	if !ok {
		return Frac{}, overflow("pow")
	}
	bottom, ok = powInt64(bottom, ue)
	if !ok {
		return Frac{}, overflow("pow")
	}
	return newFrac("pow", top, bottom)
}

// Inv returns 1/f. It fails with ErrZeroDenominator if f is zero.
func (f Frac) Inv() (Frac, error) {
	return newFrac("inv", f.Denominator(), f.num)
}

// Neg returns -f. It fails only for a numerator of math.MinInt64.
func (f Frac) Neg() (Frac, error) {
	num, ok := negInt64(f.num)
	if !ok {
		return Frac{}, overflow("neg")
	}
	return Frac{num: num, den1: f.den1}, nil
}
