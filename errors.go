package fraction

import (
	"errors"
	"fmt"
)

var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrOverflow        = errors.New("int64 overflow")
)

// OpError reports the operation that failed and why. Kind is one of the
// sentinel errors of this package.
type OpError struct {
	Op   string
	Kind error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return "fraction: " + e.Kind.Error()
	}
	return fmt.Sprintf("fraction: %s: %s", e.Op, e.Kind.Error())
}

func (e *OpError) Unwrap() error { return e.Kind }

func opError(op string, kind error) error {
	return &OpError{Op: op, Kind: kind}
}

func overflow(op string) error {
	return opError(op, ErrOverflow)
}
