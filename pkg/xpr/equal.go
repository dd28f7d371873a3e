package xpr

// Equal returns whether two values are equal: same kind and elementwise
// equal contents. The missing value equals only itself, which makes Equal
// usable for test assertions; it is not the three-valued comparison an
// operator would apply to missing operands.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case *Scalar:
		y, ok := y.(*Scalar)
		return ok && x.Val == y.Val
	case *Bool:
		y, ok := y.(*Bool)
		return ok && x.Val == y.Val
	case *MissingValue:
		return IsMissing(y)
	case *Vector:
		y, ok := y.(*Vector)
		return ok && equalFloats(x.Vec, y.Vec)
	case *Matrix:
		y, ok := y.(*Matrix)
		return ok && x.Mat.Rows() == y.Mat.Rows() &&
			x.Mat.Cols() == y.Mat.Cols() &&
			equalFloats(x.Mat.Data(), y.Mat.Data())
	case *Tensor:
		y, ok := y.(*Tensor)
		return ok && equalShape(x.Ten.Shape(), y.Ten.Shape()) &&
			equalFloats(x.Ten.Data(), y.Ten.Data())
	case *List:
		y, ok := y.(*List)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalFloats(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func equalShape(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
