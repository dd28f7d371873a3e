package xpr

import "src.xpr.dev/pkg/xpr/errs"

// List and sequence operations.

func init() {
	registerFns(map[string]builder{
		"count":   newCountFn,
		"list":    newListOfFn,
		"merge":   newMergeFn,
		"zipWith": newZipWithFn,
		"map":     newMapFn,
		"reduce":  newReduceFn,
	})
}

// Counter is implemented by nodes whose result cardinality is knowable
// without full evaluation. It decouples "how many results" from "what are
// the results", so count and the optimise pass can reason about shapes
// cheaply.
type Counter interface {
	// Countable reports whether the cardinality is statically known.
	Countable() bool
	// Count returns the statically known cardinality.
	Count() (int, error)
}

// NewCount returns a node counting the elements of its argument. Counting a
// countable argument does not evaluate it.
func NewCount(e Node) Node { return mustBuild("count", e) }

// NewListOf returns a list constructor node over the given elements.
func NewListOf(elems ...Node) Node { return mustBuild("list", elems...) }

// NewMerge returns a node concatenating two lists.
func NewMerge(l0, l1 Node) Node { return mustBuild("merge", l0, l1) }

// NewZipWith returns a node applying f pairwise over two equal-length lists.
// f is an expression with two placeholders, one per paired element.
func NewZipWith(f, l0, l1 Node) Node { return mustBuild("zipWith", f, l0, l1) }

// NewMap returns a node applying f over each element of a list. f is an
// expression with one placeholder.
func NewMap(f, l Node) Node { return mustBuild("map", f, l) }

// NewReduce returns a node folding a list from the left with f, starting
// from init. f is an expression with two placeholders: the accumulator, then
// the element.
func NewReduce(f, init, l Node) Node { return mustBuild("reduce", f, init, l) }

// count

type countFn struct {
	function
}

func newCountFn(args []Node) (Node, error) {
	if len(args) != 1 {
		return nil, errs.ArityMismatch{What: "arguments to count",
			ValidLow: 1, ValidHigh: 1, Actual: len(args)}
	}
	return &countFn{newFunction("count", args)}, nil
}

func (c *countFn) Optimise() (Node, error) { return foldOptimise(&c.function) }

func (c *countFn) Signature() string { return SigScalar }

func (c *countFn) Evaluate(sc *Scope) (Value, error) {
	a, err := c.Param(0, sc)
	if err != nil {
		return nil, err
	}
	// The fast path never evaluates the argument; its cardinality is already
	// known from its structure. Placeholders nested under a countable
	// argument are consequently not consumed.
	if cnt, ok := a.(Counter); ok && cnt.Countable() {
		n, err := cnt.Count()
		if err != nil {
			return nil, err
		}
		return NewScalar(float64(n)), nil
	}
	v, err := a.Evaluate(sc)
	if err != nil {
		return nil, err
	}
	if IsMissing(v) {
		return Missing(), nil
	}
	return NewScalar(float64(Len(v))), nil
}

// list

type listOfFn struct {
	function
}

func newListOfFn(args []Node) (Node, error) {
	return &listOfFn{newFunction("list", args)}, nil
}

func (l *listOfFn) Optimise() (Node, error) { return foldOptimise(&l.function) }

func (l *listOfFn) Signature() string { return SigList }

func (l *listOfFn) Evaluate(sc *Scope) (Value, error) {
	elems := make([]Value, len(l.args))
	for i := range l.args {
		v, err := l.evalArg(i, sc)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return NewList(elems...), nil
}

func (l *listOfFn) Countable() bool { return true }

func (l *listOfFn) Count() (int, error) { return len(l.args), nil }

// merge

type mergeFn struct {
	function
}

func newMergeFn(args []Node) (Node, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to merge",
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	return &mergeFn{newFunction("merge", args)}, nil
}

func (m *mergeFn) Optimise() (Node, error) { return foldOptimise(&m.function) }

func (m *mergeFn) Signature() string { return SigList }

func (m *mergeFn) Evaluate(sc *Scope) (Value, error) {
	l0, missing, err := m.evalList(0, sc)
	if err != nil {
		return nil, err
	}
	l1, missing1, err := m.evalList(1, sc)
	if err != nil {
		return nil, err
	}
	if missing || missing1 {
		return Missing(), nil
	}
	elems := make([]Value, 0, len(l0.Elems)+len(l1.Elems))
	elems = append(elems, l0.Elems...)
	elems = append(elems, l1.Elems...)
	return NewList(elems...), nil
}

func (m *mergeFn) Countable() bool {
	return countableArg(m.args[0]) && countableArg(m.args[1])
}

func (m *mergeFn) Count() (int, error) {
	n0, err := argCount(m.args[0])
	if err != nil {
		return 0, err
	}
	n1, err := argCount(m.args[1])
	if err != nil {
		return 0, err
	}
	return n0 + n1, nil
}

// zipWith

type zipWithFn struct {
	function
}

func newZipWithFn(args []Node) (Node, error) {
	if len(args) != 3 {
		return nil, errs.ArityMismatch{What: "arguments to zipWith",
			ValidLow: 3, ValidHigh: 3, Actual: len(args)}
	}
	return &zipWithFn{newFunction("zipWith", args)}, nil
}

func (z *zipWithFn) Signature() string { return SigList }

func (z *zipWithFn) Evaluate(sc *Scope) (Value, error) {
	f, err := z.Param(0, sc)
	if err != nil {
		return nil, err
	}
	l0, missing, err := z.evalList(1, sc)
	if err != nil {
		return nil, err
	}
	l1, missing1, err := z.evalList(2, sc)
	if err != nil {
		return nil, err
	}
	if missing || missing1 {
		return Missing(), nil
	}
	if len(l0.Elems) != len(l1.Elems) {
		return nil, errs.BadValue{What: "list arguments to zipWith",
			Valid:  "lists of equal length",
			Actual: lengthsText(len(l0.Elems), len(l1.Elems))}
	}
	elems := make([]Value, len(l0.Elems))
	for i := range l0.Elems {
		v, err := Eval(f, l0.Elems[i], l1.Elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return NewList(elems...), nil
}

// The result cardinality of a zipWith is the cardinality of its first list,
// knowable without evaluating f.
func (z *zipWithFn) Countable() bool { return countableArg(z.args[1]) }

func (z *zipWithFn) Count() (int, error) { return argCount(z.args[1]) }

// map

type mapFn struct {
	function
}

func newMapFn(args []Node) (Node, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to map",
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	return &mapFn{newFunction("map", args)}, nil
}

func (m *mapFn) Signature() string { return SigList }

func (m *mapFn) Evaluate(sc *Scope) (Value, error) {
	f, err := m.Param(0, sc)
	if err != nil {
		return nil, err
	}
	l, missing, err := m.evalList(1, sc)
	if err != nil {
		return nil, err
	}
	if missing {
		return Missing(), nil
	}
	elems := make([]Value, len(l.Elems))
	for i, e := range l.Elems {
		v, err := Eval(f, e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return NewList(elems...), nil
}

func (m *mapFn) Countable() bool { return countableArg(m.args[1]) }

func (m *mapFn) Count() (int, error) { return argCount(m.args[1]) }

// reduce

type reduceFn struct {
	function
}

func newReduceFn(args []Node) (Node, error) {
	if len(args) != 3 {
		return nil, errs.ArityMismatch{What: "arguments to reduce",
			ValidLow: 3, ValidHigh: 3, Actual: len(args)}
	}
	return &reduceFn{newFunction("reduce", args)}, nil
}

func (r *reduceFn) Signature() string { return SigUnknown }

func (r *reduceFn) Evaluate(sc *Scope) (Value, error) {
	f, err := r.Param(0, sc)
	if err != nil {
		return nil, err
	}
	acc, err := r.evalArg(1, sc)
	if err != nil {
		return nil, err
	}
	l, missing, err := r.evalList(2, sc)
	if err != nil {
		return nil, err
	}
	if missing {
		return Missing(), nil
	}
	for _, e := range l.Elems {
		acc, err = Eval(f, acc, e)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// helpers

// evalList evaluates the i-th operand and requires a list. A missing operand
// is reported through the second return so callers can propagate it as the
// result instead of failing.
func (f *function) evalList(i int, sc *Scope) (*List, bool, error) {
	v, err := f.evalArg(i, sc)
	if err != nil {
		return nil, false, err
	}
	if IsMissing(v) {
		return nil, true, nil
	}
	l, ok := v.(*List)
	if !ok {
		return nil, false, errs.BadValue{What: "argument of " + f.name,
			Valid: "list", Actual: Kind(v)}
	}
	return l, false, nil
}

func countableArg(n Node) bool {
	c, ok := n.(Counter)
	return ok && c.Countable()
}

func argCount(n Node) (int, error) {
	c, ok := n.(Counter)
	if !ok || !c.Countable() {
		return 0, errs.Unsupported{What: "static count of " + Kind(n)}
	}
	return c.Count()
}
