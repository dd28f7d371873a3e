package xpr

import (
	"testing"

	"src.xpr.dev/pkg/must"
	"src.xpr.dev/pkg/tt"
)

func optimiseCode(n Node) string {
	return Code(must.OK1(n.Optimise()))
}

func TestOptimiseFoldsClosedSubtrees(t *testing.T) {
	tt.Test(t, tt.Fn("Optimise", optimiseCode), tt.Table{
		tt.Args(NewAdd(NewScalar(1), NewScalar(2))).Rets("scalar(3)"),
		tt.Args(NewNeg(NewScalar(5))).Rets("scalar(-5)"),
		tt.Args(NewDiv(NewScalar(1), NewScalar(0))).Rets("missing()"),
		tt.Args(NewCount(scalarList(1, 2, 3))).Rets("scalar(3)"),
		tt.Args(NewMerge(scalarList(1), scalarList(2))).
			Rets("list(scalar(1), scalar(2))"),
		tt.Args(NewListOf(NewScalar(1))).Rets("list(scalar(1))"),

		// Constant folding happens inside a tree that cannot fold fully.
		tt.Args(NewAdd(Undefined(), NewMul(NewScalar(2), NewScalar(3)))).
			Rets("add(undefined(), scalar(6))"),
	})
}

func TestOptimiseKeepsOpenTrees(t *testing.T) {
	tt.Test(t, tt.Fn("Optimise", optimiseCode), tt.Table{
		tt.Args(NewAdd(Undefined(), NewScalar(2))).
			Rets("add(undefined(), scalar(2))"),
		tt.Args(Undefined()).Rets("undefined()"),
		tt.Args(NewScalar(1)).Rets("scalar(1)"),
	})
}

func TestOptimiseIsIdempotent(t *testing.T) {
	trees := []Node{
		NewAdd(NewScalar(1), NewScalar(2)),
		NewAdd(Undefined(), NewMul(NewScalar(2), NewScalar(3))),
		NewCount(NewZipWith(NewAdd(Undefined(), Undefined()),
			scalarList(1, 2), scalarList(3, 4))),
		NewReduce(NewAdd(Undefined(), Undefined()),
			NewScalar(0), scalarList(1, 2)),
	}
	for _, tree := range trees {
		once := must.OK1(tree.Optimise())
		twice := must.OK1(once.Optimise())
		if Code(once) != Code(twice) {
			t.Errorf("optimise not idempotent: %s became %s",
				Code(once), Code(twice))
		}
	}
}

func TestOptimiseDoesNotMutateOriginal(t *testing.T) {
	tree := NewAdd(NewScalar(1), NewScalar(2))
	before := Code(tree)
	must.OK1(tree.Optimise())
	if Code(tree) != before {
		t.Errorf("optimise mutated its receiver: %s", Code(tree))
	}
}
