package xpr

import (
	"fmt"
	"io"
	"strconv"

	"src.xpr.dev/pkg/xpr/errs"
)

// Value is a fully evaluated terminal node. Values are immutable once
// constructed; evaluating a value yields the value itself and never touches
// the scope.
type Value interface {
	Node
	value()
}

// cloneLeafArgs validates that a leaf node is cloned with no arguments.
func cloneLeafArgs(kind string, args []Node) error {
	if len(args) != 0 {
		return errs.ArityMismatch{What: "arguments to cloneWith of " + kind,
			ValidLow: 0, ValidHigh: 0, Actual: len(args)}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Scalar is a numeric value.
type Scalar struct {
	leaf
	Val float64
}

// NewScalar returns a scalar value.
func NewScalar(v float64) *Scalar { return &Scalar{Val: v} }

func (s *Scalar) value() {}

func (s *Scalar) Evaluate(sc *Scope) (Value, error) { return s, nil }

func (s *Scalar) Optimise() (Node, error) { return s, nil }

func (s *Scalar) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigScalar, args); err != nil {
		return nil, err
	}
	return NewScalar(s.Val), nil
}

func (s *Scalar) Signature() string { return SigScalar }

func (s *Scalar) WriteCode(w io.Writer) {
	io.WriteString(w, "scalar("+formatFloat(s.Val)+")")
}

// Bool is a boolean value.
type Bool struct {
	leaf
	Val bool
}

// NewBool returns a boolean value.
func NewBool(v bool) *Bool { return &Bool{Val: v} }

func (b *Bool) value() {}

func (b *Bool) Evaluate(sc *Scope) (Value, error) { return b, nil }

func (b *Bool) Optimise() (Node, error) { return b, nil }

func (b *Bool) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigBoolean, args); err != nil {
		return nil, err
	}
	return NewBool(b.Val), nil
}

func (b *Bool) Signature() string { return SigBoolean }

func (b *Bool) WriteCode(w io.Writer) {
	fmt.Fprintf(w, "boolean(%t)", b.Val)
}

// List is an ordered sequence of values.
type List struct {
	leaf
	Elems []Value
}

// NewList returns a list value over the given elements.
func NewList(elems ...Value) *List {
	return &List{Elems: elems}
}

func (l *List) value() {}

func (l *List) Evaluate(sc *Scope) (Value, error) { return l, nil }

func (l *List) Optimise() (Node, error) { return l, nil }

func (l *List) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigList, args); err != nil {
		return nil, err
	}
	return NewList(append([]Value(nil), l.Elems...)...), nil
}

func (l *List) Signature() string { return SigList }

func (l *List) WriteCode(w io.Writer) {
	// Same rendering as the list constructor function, so a literal list and
	// a folded list constructor render identically.
	io.WriteString(w, "list(")
	for i, e := range l.Elems {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		e.WriteCode(w)
	}
	io.WriteString(w, ")")
}

// Countable implements the Counter interface; a list knows its own length.
func (l *List) Countable() bool { return true }

// Count implements the Counter interface.
func (l *List) Count() (int, error) { return len(l.Elems), nil }

// MissingValue is the distinguished "no definite result" value of the
// engine's three-valued semantics. Operations receiving a missing operand
// propagate it upward instead of coercing it to a default number.
type MissingValue struct {
	leaf
}

var missingValue = &MissingValue{}

// Missing returns the missing value.
func Missing() *MissingValue { return missingValue }

// IsMissing reports whether v is the missing value.
func IsMissing(v Value) bool {
	_, ok := v.(*MissingValue)
	return ok
}

func (m *MissingValue) value() {}

func (m *MissingValue) Evaluate(sc *Scope) (Value, error) { return m, nil }

func (m *MissingValue) Optimise() (Node, error) { return m, nil }

func (m *MissingValue) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigMissing, args); err != nil {
		return nil, err
	}
	return Missing(), nil
}

func (m *MissingValue) Signature() string { return SigMissing }

func (m *MissingValue) WriteCode(w io.Writer) {
	io.WriteString(w, "missing()")
}
