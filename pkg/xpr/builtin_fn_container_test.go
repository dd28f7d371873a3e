package xpr

import (
	"testing"

	"src.xpr.dev/pkg/linalg"
	"src.xpr.dev/pkg/tt"
	"src.xpr.dev/pkg/xpr/errs"
)

func scalarList(elems ...float64) Node {
	args := make([]Node, len(elems))
	for i, e := range elems {
		args[i] = NewScalar(e)
	}
	return NewListOf(args...)
}

func TestCount(t *testing.T) {
	tt.Test(t, tt.Fn("Eval", evalOK), tt.Table{
		tt.Args(NewCount(scalarList(1, 2, 3))).Rets(NewScalar(3)),
		tt.Args(NewCount(NewListOf())).Rets(NewScalar(0)),
		// Sensitive only to length, not element contents.
		tt.Args(NewCount(scalarList(7, 7, 7))).Rets(NewScalar(3)),
		tt.Args(NewCount(vec(1, 2, 3, 4))).Rets(NewScalar(4)),
		tt.Args(NewCount(NewScalar(42))).Rets(NewScalar(1)),
		tt.Args(NewCount(NewTensor(linalg.NewTensor([]int{2, 3})))).
			Rets(NewScalar(6)),
		tt.Args(NewCount(Missing())).Rets(Missing()),
	})
}

func TestCountIsStaticForCountableArguments(t *testing.T) {
	// The cardinality of a zipWith is known from its first list without
	// evaluating the zipped function, even one that could not evaluate.
	f := NewDiv(Undefined(), Undefined())
	tree := NewCount(NewZipWith(f, scalarList(1, 2, 3), scalarList(0, 0, 0)))
	v := mustEval(t, tree)
	checkValue(t, v, NewScalar(3))
}

func TestListOf(t *testing.T) {
	got := mustEval(t, NewListOf(NewScalar(1), NewBool(true)))
	checkValue(t, got, NewList(NewScalar(1), NewBool(true)))

	// Elements are full subexpressions.
	got = mustEval(t, NewListOf(NewAdd(NewScalar(1), NewScalar(2))))
	checkValue(t, got, NewList(NewScalar(3)))

	// Placeholders inside the constructor bind from the scope.
	got = mustEval(t, NewListOf(Undefined(), Undefined()),
		NewScalar(1), NewScalar(2))
	checkValue(t, got, NewList(NewScalar(1), NewScalar(2)))
}

func TestMerge(t *testing.T) {
	got := mustEval(t, NewMerge(scalarList(1, 2), scalarList(3)))
	checkValue(t, got, NewList(NewScalar(1), NewScalar(2), NewScalar(3)))

	_, err := Eval(NewMerge(scalarList(1), NewScalar(2)))
	want := errs.BadValue{What: "argument of merge",
		Valid: "list", Actual: "scalar"}
	if err != want {
		t.Errorf("got error %v, want %v", err, want)
	}
}

func TestZipWith(t *testing.T) {
	add := NewAdd(Undefined(), Undefined())
	got := mustEval(t, NewZipWith(add, scalarList(1, 2, 3), scalarList(10, 20, 30)))
	checkValue(t, got,
		NewList(NewScalar(11), NewScalar(22), NewScalar(33)))
}

func TestZipWithLengthMismatch(t *testing.T) {
	add := NewAdd(Undefined(), Undefined())
	_, err := Eval(NewZipWith(add, scalarList(1, 2), scalarList(1, 2, 3)))
	want := errs.BadValue{What: "list arguments to zipWith",
		Valid: "lists of equal length", Actual: "lengths 2 and 3"}
	if err != want {
		t.Errorf("got error %v, want %v", err, want)
	}
}

func TestZipWithNonListArgument(t *testing.T) {
	add := NewAdd(Undefined(), Undefined())
	_, err := Eval(NewZipWith(add, NewScalar(1), scalarList(1)))
	want := errs.BadValue{What: "argument of zipWith",
		Valid: "list", Actual: "scalar"}
	if err != want {
		t.Errorf("got error %v, want %v", err, want)
	}
}

func TestZipWithFunctionFromScope(t *testing.T) {
	// The zipped function itself may be left as a placeholder and supplied
	// at evaluation time.
	tree := NewZipWith(Undefined(), scalarList(1, 2), scalarList(3, 4))
	got := mustEval(t, tree, NewMul(Undefined(), Undefined()))
	checkValue(t, got, NewList(NewScalar(3), NewScalar(8)))
}

func TestMap(t *testing.T) {
	double := NewMul(Undefined(), NewScalar(2))
	got := mustEval(t, NewMap(double, scalarList(1, 2, 3)))
	checkValue(t, got, NewList(NewScalar(2), NewScalar(4), NewScalar(6)))
}

func TestReduce(t *testing.T) {
	add := NewAdd(Undefined(), Undefined())
	got := mustEval(t, NewReduce(add, NewScalar(0), scalarList(1, 2, 3, 4)))
	checkValue(t, got, NewScalar(10))

	// An empty list folds to the initial value.
	got = mustEval(t, NewReduce(add, NewScalar(7), NewListOf()))
	checkValue(t, got, NewScalar(7))
}

func TestContainerMissingPropagation(t *testing.T) {
	missingList := NewDiv(NewScalar(1), NewScalar(0))
	tt.Test(t, tt.Fn("Eval", evalOK), tt.Table{
		tt.Args(NewMerge(missingList, scalarList(1))).Rets(Missing()),
		tt.Args(NewZipWith(NewAdd(Undefined(), Undefined()),
			missingList, scalarList(1))).Rets(Missing()),
		tt.Args(NewMap(NewNeg(Undefined()), missingList)).Rets(Missing()),
		tt.Args(NewReduce(NewAdd(Undefined(), Undefined()),
			NewScalar(0), missingList)).Rets(Missing()),
	})
}

func TestStaticCounts(t *testing.T) {
	l := scalarList(1, 2, 3)
	tt.Test(t, tt.Fn("argCount", func(n Node) int {
		c, err := argCount(n)
		if err != nil {
			return -1
		}
		return c
	}), tt.Table{
		tt.Args(l).Rets(3),
		tt.Args(NewZipWith(NewAdd(Undefined(), Undefined()), l, l)).Rets(3),
		tt.Args(NewMap(NewNeg(Undefined()), l)).Rets(3),
		tt.Args(NewMerge(l, scalarList(4))).Rets(4),
		tt.Args(NewList(NewScalar(1))).Rets(1),
		tt.Args(vec(1, 2)).Rets(2),
		// Not statically countable.
		tt.Args(NewScalar(1)).Rets(-1),
		tt.Args(Undefined()).Rets(-1),
	})
}
