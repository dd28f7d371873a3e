// Package linalg provides dense numerical containers - Vector, Matrix and
// Tensor - used as payloads of value nodes in the xpr engine.
//
// Matrix and Tensor use column-major storage. They are not meant to be
// accessed one element at a time in tight loops; element access is provided
// for inspection and testing, while bulk operations should go through Data.
package linalg

// Flatten returns the number of elements implied by a shape, which is the
// product of its dimensions. The flattened size of the empty shape is 1.
func Flatten(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
