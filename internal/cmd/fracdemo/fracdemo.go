// Package fracdemo prints a walkthrough of the fraction API for two operands
// and an exponent.
package fracdemo

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/aatomu/fraction"
)

// Config holds the demo operands.
type Config struct {
	LeftNum  int64 `env:"FRACDEMO_LEFT_NUM"  envDefault:"5"`
	LeftDen  int64 `env:"FRACDEMO_LEFT_DEN"  envDefault:"4"`
	RightNum int64 `env:"FRACDEMO_RIGHT_NUM" envDefault:"1"`
	RightDen int64 `env:"FRACDEMO_RIGHT_DEN" envDefault:"2"`
	Exponent int   `env:"FRACDEMO_EXPONENT"  envDefault:"3"`
	Verbose  bool  `env:"FRACDEMO_VERBOSE"`
}

// ParseConfig reads the environment, then lets flags in args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.LeftNum, "left-num", cfg.LeftNum, "left operand numerator")
	fs.Int64Var(&cfg.LeftDen, "left-den", cfg.LeftDen, "left operand denominator")
	fs.Int64Var(&cfg.RightNum, "right-num", cfg.RightNum, "right operand numerator")
	fs.Int64Var(&cfg.RightDen, "right-den", cfg.RightDen, "right operand denominator")
	fs.IntVar(&cfg.Exponent, "exponent", cfg.Exponent, "exponent applied to the left operand")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every computed value")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger returns a console logger on w, at debug level when verbose.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// Run writes the report to out. Operands that cannot be built abort the run;
// a failing operator is reported on its line and the run goes on.
func Run(ctx context.Context, cfg Config, out io.Writer, logger zerolog.Logger) error {
	start := time.Now()

	left, err := fraction.NewFrac(cfg.LeftNum, cfg.LeftDen)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	right, err := fraction.NewFrac(cfg.RightNum, cfg.RightDen)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	r := &report{w: out, logger: logger}
	sections := []func(){
		func() { r.rendering(left, right) },
		func() { r.operators(left, right, cfg.Exponent) },
		func() { r.predicates(left, right) },
	}
	for i, section := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			r.printf("\n")
		}
		section()
		if r.err != nil {
			return fmt.Errorf("write report: %w", r.err)
		}
	}

	logger.Info().
		Str("left", raw(left)).
		Str("right", raw(right)).
		Dur("duration", time.Since(start)).
		Msg("report written")
	return nil
}

type report struct {
	w      io.Writer
	logger zerolog.Logger
	err    error
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *report) rendering(left, right fraction.Frac) {
	r.printf("%s\n", left)
	r.printf("%s\n", right)
	r.printf("%s\n", left.MixedNumber())
	r.printf("%s\n", right.MixedNumber())
}

func (r *report) operators(left, right fraction.Frac, exponent int) {
	r.binary("Addition", "+", left, right, fraction.Frac.Add)
	r.binary("Subtraction", "-", left, right, fraction.Frac.Sub)
	r.binary("Multiplication", "*", left, right, fraction.Frac.Mul)
	r.binary("Division", "/", left, right, fraction.Frac.Div)

	expr := fmt.Sprintf("(%s)^%d", raw(left), exponent)
	if pow, err := left.Pow(exponent); err != nil {
		r.failed("Power", expr, err)
	} else {
		r.computed("Power", expr, pow)
	}

	r.printf("Equality : %s == %s = %t\n", raw(left), raw(right), left.Equal(right))
	r.printf("Decimal of %s = %v\n", raw(left), left.Float())
	r.printf("Decimal of %s = %v\n", raw(right), right.Float())
}

func (r *report) predicates(left, right fraction.Frac) {
	l := raw(left)
	r.printf("Check if %s value is 0 : %t\n", l, left.IsZero())
	r.printf("Check if %s is integer : %t\n", l, left.IsInteger())
	r.printf("Check if the absolute value of %s is < 1 : %t\n", l, left.IsProper())
	r.printf("Check if %s is equal to 1 : %t\n", l, left.IsUnit())
	r.printf("Check if %s numerator is 1 in its reduced form : %t\n", l, left.IsUnitFraction())
	r.printf("Check if %s and %s differ by a unit fraction : %t\n", l, raw(right), left.IsAdjacentTo(right))
}

func (r *report) binary(label, sym string, a, b fraction.Frac, op func(fraction.Frac, fraction.Frac) (fraction.Frac, error)) {
	expr := fmt.Sprintf("%s %s %s", raw(a), sym, raw(b))
	res, err := op(a, b)
	if err != nil {
		r.failed(label, expr, err)
		return
	}
	r.computed(label, expr, res)
}

func (r *report) computed(label, expr string, res fraction.Frac) {
	r.logger.Debug().
		Str("op", label).
		Str("expr", expr).
		Str("result", raw(res)).
		Msg("computed")
	r.printf("%s : %s = %s\n", label, expr, res)
}

func (r *report) failed(label, expr string, err error) {
	r.logger.Warn().
		Err(err).
		Str("op", label).
		Str("expr", expr).
		Msg("operation failed")
	r.printf("%s : %s = error: %v\n", label, expr, err)
}

// raw renders the stored terms, unreduced.
func raw(f fraction.Frac) string {
	return fmt.Sprintf("%d/%d", f.Numerator(), f.Denominator())
}
