// Package fraction provides exact rational numbers over int64.
//
// A Frac keeps the numerator and denominator it was built with. Arithmetic
// returns new, unreduced values; only rendering (String, MixedNumber) and
// Reduced bring a value to lowest terms. Every operation that can produce a
// zero denominator or leave the int64 range returns an error instead:
//
//	half := fraction.MustFrac(1, 2)
//	_, err := half.Div(fraction.Int(0))
//	errors.Is(err, fraction.ErrZeroDenominator) // true
//
// GCD and LCM are exported for any signed integer type.
package fraction
