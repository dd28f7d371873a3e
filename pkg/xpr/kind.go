package xpr

import "fmt"

// Kind returns a short description of what a node is, for use in error
// messages and diagnostics: the value kind for values, "placeholder" for
// placeholders, and the operator name for functions.
func Kind(n Node) string {
	if v, ok := n.(Value); ok {
		return v.Signature()
	}
	if IsUndef(n) {
		return "placeholder"
	}
	if f, ok := n.(interface{ Name() string }); ok {
		return f.Name() + " function"
	}
	return SigUnknown
}

// Len returns the element count of a value: the length of a list or vector,
// the total size of a matrix or tensor, 1 for a scalar or boolean, and -1
// for the missing value.
func Len(v Value) int {
	switch v := v.(type) {
	case *List:
		return len(v.Elems)
	case *Vector:
		return v.Vec.Len()
	case *Matrix:
		return v.Mat.Size()
	case *Tensor:
		return v.Ten.Size()
	case *MissingValue:
		return -1
	default:
		return 1
	}
}

func lengthsText(x, y int) string {
	return fmt.Sprintf("lengths %d and %d", x, y)
}
