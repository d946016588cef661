// Package errs defines the two error kinds shared by every algorithm package
// in this module.
//
// Each algorithm package declares its own sentinels (digits.ErrNonDigit,
// power.ErrZeroBase, ...). Every such sentinel wraps exactly one kind below,
// so a caller may branch on the precise sentinel or on the broad kind:
//
//	v, err := digits.ToInt(s)
//	switch {
//	case errors.Is(err, errs.ErrOverflow):
//		// value does not fit, fall back to digits.ToBig
//	case errors.Is(err, errs.ErrInvalidArgument):
//		// reject input
//	}
//
// Errors are always returned to the immediate caller. Nothing in this module
// panics on user input, retries, or swallows an error.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates that a precondition of the called function
	// was violated (empty or non-digit string, negative count, 0^0, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow indicates that the mathematically correct result does not
	// fit the fixed-width result type.
	ErrOverflow = errors.New("overflow")
)

// New returns a package sentinel of the form "<pkg>: <msg>" that wraps kind.
// It is meant for package-level var declarations only.
func New(pkg, msg string, kind error) error {
	return &sentinel{text: pkg + ": " + msg, kind: kind}
}

// Wrapf prefixes err with the method name and a formatted detail:
// "<method>: <detail>: <err>". The result still matches err with errors.Is.
func Wrapf(method string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// sentinel is a named error carrying its kind.
type sentinel struct {
	text string
	kind error
}

func (s *sentinel) Error() string { return s.text }

// Unwrap exposes the kind to errors.Is / errors.As.
func (s *sentinel) Unwrap() error { return s.kind }
