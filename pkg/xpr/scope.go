package xpr

import "src.xpr.dev/pkg/xpr/errs"

// Scope is the evaluation context of one top-level Eval call: an ordered
// queue of pending argument nodes, consumed front to back as placeholders
// are reached during evaluation. A scope is owned exclusively by the call
// that created it and must not be shared between concurrent evaluations.
type Scope struct {
	pending []Node
}

// NewScope returns a scope seeded with the given pending arguments, in call
// order.
func NewScope(args ...Node) *Scope {
	return &Scope{pending: append([]Node(nil), args...)}
}

// Push appends a pending argument to the back of the queue.
func (sc *Scope) Push(n Node) {
	sc.pending = append(sc.pending, n)
}

// Pop removes and returns the front of the queue. Popping an empty scope is
// an arity error: evaluation has reached a placeholder for which no pending
// argument remains.
func (sc *Scope) Pop() (Node, error) {
	if len(sc.pending) == 0 {
		return nil, errs.ArityMismatch{What: "pending arguments in scope",
			ValidLow: 1, ValidHigh: -1, Actual: 0}
	}
	n := sc.pending[0]
	sc.pending = sc.pending[1:]
	return n, nil
}

// Len returns the number of pending arguments.
func (sc *Scope) Len() int { return len(sc.pending) }
