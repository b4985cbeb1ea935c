package fraction

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperators(t *testing.T) {
	a := MustFrac(5, 4)
	b := MustFrac(1, 2)

	tests := []struct {
		name    string
		op      func(Frac, Frac) (Frac, error)
		wantNum int64
		wantDen int64
		want    string
	}{
		{"add", Frac.Add, 7, 4, "7/4"},
		{"sub", Frac.Sub, 3, 4, "3/4"},
		{"mul", Frac.Mul, 5, 8, "5/8"},
		{"div", Frac.Div, 10, 4, "5/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, got.Numerator())
			assert.Equal(t, tt.wantDen, got.Denominator())
			assert.Equal(t, tt.want, got.String())
		})
	}

	// operands untouched
	assert.Equal(t, MustFrac(5, 4), a)
	assert.Equal(t, MustFrac(1, 2), b)
}

func TestAddKeepsResultUnreduced(t *testing.T) {
	sixth := MustFrac(1, 6)
	sum, err := sixth.Add(sixth)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Numerator())
	assert.Equal(t, int64(6), sum.Denominator())
	assert.Equal(t, "1/3", sum.String())

	diff, err := MustFrac(3, 4).Sub(MustFrac(1, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(2), diff.Numerator())
	assert.Equal(t, int64(4), diff.Denominator())
}

func TestAddUsesLeastCommonDenominator(t *testing.T) {
	sum, err := MustFrac(1, 6).Add(MustFrac(1, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(5), sum.Numerator())
	assert.Equal(t, int64(12), sum.Denominator())

	diff, err := MustFrac(-1, 6).Sub(MustFrac(1, 4))
	require.NoError(t, err)
	assert.Equal(t, "-5/12", diff.String())
}

func TestDivByZeroFraction(t *testing.T) {
	for _, zero := range []Frac{Int(0), MustFrac(0, 1), MustFrac(0, -7)} {
		_, err := MustFrac(1, 2).Div(zero)
		require.ErrorIs(t, err, ErrZeroDenominator)

		var opErr *OpError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "div", opErr.Op)
		assert.Equal(t, "fraction: div: zero denominator", err.Error())
	}
}

func TestDivByNegativeMovesSign(t *testing.T) {
	got, err := MustFrac(1, 2).Div(MustFrac(-1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), got.Numerator())
	assert.Equal(t, int64(2), got.Denominator())
}

func TestPow(t *testing.T) {
	tests := []struct {
		name    string
		f       Frac
		e       int
		wantNum int64
		wantDen int64
	}{
		{"cube", MustFrac(5, 4), 3, 125, 64},
		{"square negative", MustFrac(-2, 3), 2, 4, 9},
		{"cube negative", MustFrac(-2, 3), 3, -8, 27},
		{"unreduced", MustFrac(2, 4), 2, 4, 16},
		{"zero exponent", MustFrac(5, 4), 0, 1, 1},
		{"zero to zero", Int(0), 0, 1, 1},
		{"reciprocal", MustFrac(2, 3), -1, 3, 2},
		{"negative exponent", MustFrac(2, 3), -2, 9, 4},
		{"negative base reciprocal", MustFrac(-2, 3), -1, -3, 2},
		{"negative base negative odd", MustFrac(-2, 3), -3, -27, 8},
		{"largest power of two", Int(2), 62, 1 << 62, 1},
		{"min int64", Int(-2), 63, math.MinInt64, 1},
		{"one to min int", Int(-1), math.MinInt, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Pow(tt.e)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, got.Numerator())
			assert.Equal(t, tt.wantDen, got.Denominator())
		})
	}
}

func TestPowZeroNegativeExponent(t *testing.T) {
	_, err := Int(0).Pow(-1)
	require.ErrorIs(t, err, ErrZeroDenominator)

	_, err = MustFrac(0, 5).Pow(-4)
	require.ErrorIs(t, err, ErrZeroDenominator)

	// den^40 would overflow first
	_, err = MustFrac(0, 3).Pow(-40)
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestOverflow(t *testing.T) {
	maxInt := Int(math.MaxInt64)
	tests := []struct {
		name string
		op   string
		run  func() (Frac, error)
	}{
		{"add numerator", "add", func() (Frac, error) { return maxInt.Add(Int(1)) }},
		{"sub numerator", "sub", func() (Frac, error) { return Int(math.MinInt64).Sub(Int(1)) }},
		{"add common denominator", "add", func() (Frac, error) {
			return MustFrac(1, math.MaxInt64).Add(MustFrac(1, 2))
		}},
		{"mul numerator", "mul", func() (Frac, error) { return maxInt.Mul(Int(2)) }},
		{"mul denominator", "mul", func() (Frac, error) {
			return MustFrac(1, math.MaxInt64).Mul(MustFrac(1, 2))
		}},
		{"div", "div", func() (Frac, error) { return maxInt.Div(MustFrac(1, 2)) }},
		{"div sign", "div", func() (Frac, error) { return Int(math.MinInt64).Div(Int(-1)) }},
		{"pow", "pow", func() (Frac, error) { return Int(2).Pow(63) }},
		{"pow denominator", "pow", func() (Frac, error) { return MustFrac(1, 3).Pow(40) }},
		{"neg", "neg", func() (Frac, error) { return Int(math.MinInt64).Neg() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			require.ErrorIs(t, err, ErrOverflow)

			var opErr *OpError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, tt.op, opErr.Op)
		})
	}
}

func TestInvAndNeg(t *testing.T) {
	inv, err := MustFrac(-3, 4).Inv()
	require.NoError(t, err)
	assert.Equal(t, int64(-4), inv.Numerator())
	assert.Equal(t, int64(3), inv.Denominator())

	_, err = Int(0).Inv()
	require.ErrorIs(t, err, ErrZeroDenominator)

	neg, err := MustFrac(6, 8).Neg()
	require.NoError(t, err)
	assert.Equal(t, int64(-6), neg.Numerator())
	assert.Equal(t, int64(8), neg.Denominator())
}

func TestArithmeticMatchesFloat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() Frac {
		den := rng.Int63n(1000) + 1
		if rng.Intn(2) == 0 {
			den = -den
		}
		return MustFrac(rng.Int63n(2001)-1000, den)
	}

	for i := 0; i < 2000; i++ {
		a, b := random(), random()

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.InDelta(t, a.Float()+b.Float(), sum.Float(), 1e-9, "%s + %s", a, b)

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.InDelta(t, a.Float()-b.Float(), diff.Float(), 1e-9, "%s - %s", a, b)

		prod, err := a.Mul(b)
		require.NoError(t, err)
		assert.InDelta(t, a.Float()*b.Float(), prod.Float(), 1e-9, "%s * %s", a, b)

		quo, err := a.Div(b)
		if b.IsZero() {
			require.ErrorIs(t, err, ErrZeroDenominator)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, a.Float()/b.Float(), quo.Float(), 1e-6, "%s / %s", a, b)

		require.Positive(t, sum.Denominator())
		require.Positive(t, quo.Denominator())
	}
}
