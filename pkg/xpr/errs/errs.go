// Package errs declares error types used across the xpr engine.
//
// Every type has a stable message grammar, so that error messages can be
// asserted in tests and understood without knowing which operation produced
// them.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %s has no valid value, but is %s", e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, strconv.Itoa(e.ValidLow), strconv.Itoa(e.ValidHigh), e.Actual)
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range. A ValidHigh of -1 means there is no upper bound.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func valuesText(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// Error implements the error interface.
func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %s must be %d or more values, but is %s",
			e.What, e.ValidLow, valuesText(e.Actual))
	case e.ValidLow == e.ValidHigh:
		return fmt.Sprintf("arity mismatch: %s must be %d values, but is %s",
			e.What, e.ValidLow, valuesText(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %s must be %d to %d values, but is %s",
			e.What, e.ValidLow, e.ValidHigh, valuesText(e.Actual))
	}
}

// BadValue encodes an error where an operand is not any of the valid kinds, or
// has the right kind but an unusable shape.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf(
		"bad value: %s must be %s, but is %s", e.What, e.Valid, e.Actual)
}

// UnboundPlaceholder encodes an error where a placeholder node is evaluated
// without ever being substituted from the scope. It is detected at the
// placeholder itself, unlike ArityMismatch, which is only detected when the
// scope runs dry or is left with a remainder.
type UnboundPlaceholder struct{}

// Error implements the error interface.
func (UnboundPlaceholder) Error() string {
	return "unbound placeholder: evaluated without a pending argument"
}

// Unsupported encodes an error for an operation a node variant does not
// implement. It signals a violated programming contract, not a user error.
type Unsupported struct {
	What string
}

// Error implements the error interface.
func (e Unsupported) Error() string {
	return "unsupported: " + e.What
}
