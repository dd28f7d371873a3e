package linalg

import "fmt"

// Vector is a dense vector of float64 elements.
type Vector []float64

// NewVector returns a zero-initialized vector of n elements.
func NewVector(n int) Vector {
	if n < 0 {
		panic(fmt.Sprintf("linalg: negative vector size %d", n))
	}
	return make(Vector, n)
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// At returns the i-th element. It panics if i is out of bounds.
func (v Vector) At(i int) float64 {
	checkIndex("vector index", i, len(v))
	return v[i]
}

// Set assigns the i-th element. It panics if i is out of bounds.
func (v Vector) Set(i int, x float64) {
	checkIndex("vector index", i, len(v))
	v[i] = x
}

// Zero sets all elements to zero.
func (v Vector) Zero() { v.Fill(0) }

// Fill sets all elements to x.
func (v Vector) Fill(x float64) {
	for i := range v {
		v[i] = x
	}
}

// Data returns the underlying contiguous storage.
func (v Vector) Data() []float64 { return v }

// Clone returns a copy sharing no storage with v.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func checkIndex(what string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("linalg: %s %d out of range [0, %d)", what, i, n))
	}
}
