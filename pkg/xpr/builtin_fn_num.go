package xpr

import (
	"math"

	"src.xpr.dev/pkg/linalg"
	"src.xpr.dev/pkg/xpr/errs"
)

// Numerical operations.
//
// All arithmetic variants share the same machinery: a scalar kernel lifted
// over scalars, vectors (elementwise, lengths must agree) and scalar-vector
// broadcasts. A kernel reporting no definite result (division by zero, square
// root of a negative) produces the missing value, and a missing operand
// propagates; neither is coerced to a default number.

type scalarOp func(x, y float64) (float64, bool)

type unaryOp func(x float64) (float64, bool)

var binaryOps = map[string]scalarOp{
	"add": func(x, y float64) (float64, bool) { return x + y, true },
	"sub": func(x, y float64) (float64, bool) { return x - y, true },
	"mul": func(x, y float64) (float64, bool) { return x * y, true },
	"div": func(x, y float64) (float64, bool) {
		if y == 0 {
			return 0, false
		}
		return x / y, true
	},
}

var unaryOps = map[string]unaryOp{
	"neg": func(x float64) (float64, bool) { return -x, true },
	"sqrt": func(x float64) (float64, bool) {
		if x < 0 {
			return 0, false
		}
		return math.Sqrt(x), true
	},
}

func init() {
	fns := map[string]builder{}
	for name := range binaryOps {
		name := name
		fns[name] = func(args []Node) (Node, error) { return newBinaryFn(name, args) }
	}
	for name := range unaryOps {
		name := name
		fns[name] = func(args []Node) (Node, error) { return newUnaryFn(name, args) }
	}
	registerFns(fns)
}

// NewAdd returns an addition node.
func NewAdd(x, y Node) Node { return mustBuild("add", x, y) }

// NewSub returns a subtraction node.
func NewSub(x, y Node) Node { return mustBuild("sub", x, y) }

// NewMul returns a multiplication node.
func NewMul(x, y Node) Node { return mustBuild("mul", x, y) }

// NewDiv returns a division node. Division by zero evaluates to the missing
// value.
func NewDiv(x, y Node) Node { return mustBuild("div", x, y) }

// NewNeg returns a negation node.
func NewNeg(x Node) Node { return mustBuild("neg", x) }

// NewSqrt returns a square root node. The square root of a negative scalar
// evaluates to the missing value.
func NewSqrt(x Node) Node { return mustBuild("sqrt", x) }

type binaryFn struct {
	function
	apply scalarOp
}

func newBinaryFn(name string, args []Node) (Node, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to " + name,
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	return &binaryFn{newFunction(name, args), binaryOps[name]}, nil
}

func (op *binaryFn) Optimise() (Node, error) { return foldOptimise(&op.function) }

func (op *binaryFn) Signature() string {
	a, b := op.args[0].Signature(), op.args[1].Signature()
	switch {
	case a == SigUnknown || b == SigUnknown:
		return SigUnknown
	case a == SigMissing || b == SigMissing:
		return SigMissing
	case !numericSig(a) || !numericSig(b):
		// Evaluation rejects these operands, so there is no result kind to
		// declare.
		return SigUnknown
	case a == SigVector || b == SigVector:
		return SigVector
	default:
		return SigScalar
	}
}

func numericSig(s string) bool { return s == SigScalar || s == SigVector }

func (op *binaryFn) Evaluate(sc *Scope) (Value, error) {
	x, err := op.evalArg(0, sc)
	if err != nil {
		return nil, err
	}
	y, err := op.evalArg(1, sc)
	if err != nil {
		return nil, err
	}
	if IsMissing(x) || IsMissing(y) {
		return Missing(), nil
	}
	switch a := x.(type) {
	case *Scalar:
		switch b := y.(type) {
		case *Scalar:
			return applyScalar(op.apply, a.Val, b.Val), nil
		case *Vector:
			return mapVector(b.Vec, func(e float64) (float64, bool) {
				return op.apply(a.Val, e)
			}), nil
		}
	case *Vector:
		switch b := y.(type) {
		case *Scalar:
			return mapVector(a.Vec, func(e float64) (float64, bool) {
				return op.apply(e, b.Val)
			}), nil
		case *Vector:
			if a.Vec.Len() != b.Vec.Len() {
				return nil, errs.BadValue{
					What:   "vector operands of " + op.name,
					Valid:  "vectors of equal length",
					Actual: lengthsText(a.Vec.Len(), b.Vec.Len())}
			}
			return zipVectors(a.Vec, b.Vec, op.apply), nil
		}
	}
	return nil, errs.BadValue{What: "operands of " + op.name,
		Valid: "scalars or vectors", Actual: Kind(x) + " and " + Kind(y)}
}

type unaryFn struct {
	function
	apply unaryOp
}

func newUnaryFn(name string, args []Node) (Node, error) {
	if len(args) != 1 {
		return nil, errs.ArityMismatch{What: "arguments to " + name,
			ValidLow: 1, ValidHigh: 1, Actual: len(args)}
	}
	return &unaryFn{newFunction(name, args), unaryOps[name]}, nil
}

func (op *unaryFn) Optimise() (Node, error) { return foldOptimise(&op.function) }

func (op *unaryFn) Signature() string {
	switch a := op.args[0].Signature(); a {
	case SigScalar, SigVector, SigMissing:
		return a
	default:
		return SigUnknown
	}
}

func (op *unaryFn) Evaluate(sc *Scope) (Value, error) {
	x, err := op.evalArg(0, sc)
	if err != nil {
		return nil, err
	}
	switch a := x.(type) {
	case *MissingValue:
		return a, nil
	case *Scalar:
		return applyScalar(func(v, _ float64) (float64, bool) {
			return op.apply(v)
		}, a.Val, 0), nil
	case *Vector:
		return mapVector(a.Vec, op.apply), nil
	}
	return nil, errs.BadValue{What: "operand of " + op.name,
		Valid: "scalar or vector", Actual: Kind(x)}
}

func applyScalar(apply scalarOp, x, y float64) Value {
	r, ok := apply(x, y)
	if !ok {
		return Missing()
	}
	return NewScalar(r)
}

// mapVector applies a kernel elementwise. Any element without a definite
// result makes the whole vector result missing, since a vector cannot hold a
// missing element.
func mapVector(v linalg.Vector, apply unaryOp) Value {
	out := linalg.NewVector(v.Len())
	for i, e := range v {
		r, ok := apply(e)
		if !ok {
			return Missing()
		}
		out[i] = r
	}
	return NewVector(out)
}

func zipVectors(x, y linalg.Vector, apply scalarOp) Value {
	out := linalg.NewVector(x.Len())
	for i := range x {
		r, ok := apply(x[i], y[i])
		if !ok {
			return Missing()
		}
		out[i] = r
	}
	return NewVector(out)
}
