package linalg

import "fmt"

// Tensor is a dense tensor of arbitrary rank in column-major storage order:
// the first index varies fastest.
type Tensor struct {
	data  []float64
	shape []int
}

// NewTensor returns a zero-initialized tensor with the given shape. All
// dimensions must be positive.
func NewTensor(shape []int) *Tensor {
	checkShape(shape)
	return &Tensor{data: make([]float64, Flatten(shape)), shape: append([]int(nil), shape...)}
}

// NewTensorData returns a tensor with the given shape over the given
// column-major data, which must have exactly Flatten(shape) elements. The
// tensor takes ownership of both slices.
func NewTensorData(shape []int, data []float64) *Tensor {
	checkShape(shape)
	if len(data) != Flatten(shape) {
		panic(fmt.Sprintf("linalg: tensor data has %d elements, shape %v needs %d",
			len(data), shape, Flatten(shape)))
	}
	return &Tensor{data: data, shape: shape}
}

func checkShape(shape []int) {
	if len(shape) == 0 {
		panic("linalg: empty tensor shape")
	}
	for _, d := range shape {
		if d <= 0 {
			panic(fmt.Sprintf("linalg: invalid tensor shape %v", shape))
		}
	}
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return len(t.shape) }

// Shape returns the dimensions. The caller must not modify the returned
// slice.
func (t *Tensor) Shape() []int { return t.shape }

// Size returns the total number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// At returns the element at the given index sequence, whose length must
// equal the tensor's rank. It panics on a rank mismatch or an out-of-bounds
// index.
func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set assigns the element at the given index sequence, whose length must
// equal the tensor's rank. It panics on a rank mismatch or an out-of-bounds
// index.
func (t *Tensor) Set(x float64, idx ...int) {
	t.data[t.offset(idx)] = x
}

// offset maps an index sequence to the column-major flat offset
// idx[0] + shape[0]*(idx[1] + shape[1]*(idx[2] + ...)).
func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("linalg: tensor of rank %d indexed with %d indices",
			len(t.shape), len(idx)))
	}
	off := 0
	for d := len(idx) - 1; d >= 0; d-- {
		checkIndex(fmt.Sprintf("tensor index %d", d), idx[d], t.shape[d])
		off = off*t.shape[d] + idx[d]
	}
	return off
}

// Zero sets all elements to zero.
func (t *Tensor) Zero() { t.Fill(0) }

// Fill sets all elements to x.
func (t *Tensor) Fill(x float64) {
	for i := range t.data {
		t.data[i] = x
	}
}

// Data returns the underlying contiguous column-major storage.
func (t *Tensor) Data() []float64 { return t.data }

// Clone returns a copy sharing no storage with t.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: append([]int(nil), t.shape...)}
}
