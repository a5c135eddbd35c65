// Package errs holds the error taxonomy shared by the pattern packages.
//
// There is a single failure class in this repository: a caller passed a value the
// domain cannot represent (a negative distance, an empty party, a die without edges).
// Such failures are reported as *InvalidArgumentError and match ErrInvalidArgument
// with errors.Is.
//
// Error strings are built with strconv instead of fmt so the failure path stays cheap
// when it is hit in table tests and benchmarks.
package errs

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument classifies every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports which operation rejected which argument and why.
type InvalidArgumentError struct {
	// Op is the operation that rejected the argument, e.g. "carpool.cost".
	Op string

	// Arg is the argument name, e.g. "distance".
	Arg string

	// Value is the rejected value.
	Value float64

	// Reason is a short human-readable constraint, e.g. "must be > 0".
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	// Example: carpool.cost: invalid argument "distance"=-1: must be >= 0
	msg := e.Op + ": invalid argument " + strconv.Quote(e.Arg) + "=" +
		strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidArgument) report true.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Invalid builds an *InvalidArgumentError.
func Invalid(op, arg string, value float64, reason string) error {
	return &InvalidArgumentError{Op: op, Arg: arg, Value: value, Reason: reason}
}

// IsInvalidArgument reports whether err is (or wraps) an invalid argument failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
