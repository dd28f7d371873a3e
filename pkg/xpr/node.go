// Package xpr implements a lazy, composable expression evaluation engine for
// a small functional numerical language.
//
// An expression is a tree of nodes. Leaves are either values (scalars,
// vectors, matrices, tensors, booleans, lists) or placeholders; interior
// nodes are named functions holding ordered argument lists. A tree may be
// only partially specified: argument slots left as placeholders (see
// Undefined) are bound from the arguments supplied to Eval, in the
// left-to-right depth-first order in which evaluation reaches them. The same
// tree can be evaluated repeatedly with different argument lists.
package xpr

import (
	"io"
	"strconv"
	"strings"

	"src.xpr.dev/pkg/xpr/errs"
)

// Node is one node of an expression tree. It is implemented by the value
// types, by Undef, and by every function variant.
type Node interface {
	// Arity returns the number of argument slots of the node.
	Arity() int

	// Param returns the i-th argument. If that argument is a placeholder and
	// sc is non-nil, the front of the scope is popped and returned in its
	// place. All function variants must retrieve operands through Param so
	// that placeholder binding stays transparent to them.
	Param(i int, sc *Scope) (Node, error)

	// Replace substitutes the i-th argument in place. Callers aliasing a
	// subtree into several parents must be aware that a parent's children
	// can be swapped after construction.
	Replace(i int, arg Node) error

	// Evaluate reduces the node to a value, evaluating arguments recursively
	// and consuming the scope as placeholders are reached.
	Evaluate(sc *Scope) (Value, error)

	// Optimise returns an equivalent, possibly rewritten tree. It is
	// idempotent: optimising an already optimised tree changes nothing.
	Optimise() (Node, error)

	// CloneWith builds a node of the same variant over the given arguments.
	CloneWith(args ...Node) (Node, error)

	// Signature returns the statically declared kind of value the node
	// produces, independent of runtime argument values.
	Signature() string

	// WriteCode writes a deterministic textual rendering of the node, like
	// count(list(scalar(2))). The rendering is meant for diagnostics and
	// cache keys; there is no parser for it.
	WriteCode(w io.Writer)
}

// Code renders a node as text. See Node.WriteCode.
func Code(n Node) string {
	var sb strings.Builder
	n.WriteCode(&sb)
	return sb.String()
}

// node is the base for nodes that carry arguments.
type node struct {
	args []Node
}

func (n *node) Arity() int { return len(n.args) }

func (n *node) Param(i int, sc *Scope) (Node, error) {
	if i < 0 || i >= len(n.args) {
		return nil, errs.OutOfRange{What: "argument index",
			ValidLow: 0, ValidHigh: len(n.args) - 1, Actual: strconv.Itoa(i)}
	}
	if sc != nil && IsUndef(n.args[i]) {
		return sc.Pop()
	}
	return n.args[i], nil
}

func (n *node) Replace(i int, arg Node) error {
	if i < 0 || i >= len(n.args) {
		return errs.OutOfRange{What: "argument index",
			ValidLow: 0, ValidHigh: len(n.args) - 1, Actual: strconv.Itoa(i)}
	}
	if arg == nil {
		return errs.BadValue{What: "replacement argument",
			Valid: "a node", Actual: "nil"}
	}
	n.args[i] = arg
	return nil
}

// leaf is the base for nodes without argument slots.
type leaf struct{}

func (leaf) Arity() int { return 0 }

func (leaf) Param(i int, sc *Scope) (Node, error) {
	return nil, errs.OutOfRange{What: "argument index",
		ValidLow: 0, ValidHigh: -1, Actual: strconv.Itoa(i)}
}

func (leaf) Replace(i int, arg Node) error {
	return errs.Unsupported{What: "replacing an argument of a leaf node"}
}
