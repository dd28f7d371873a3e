package xpr

import (
	"fmt"
	"io"

	"src.xpr.dev/pkg/linalg"
)

// Value nodes wrapping the dense payload types of pkg/linalg. The payloads
// are opaque to the engine: it never inspects their storage beyond element
// count and delegates their binary encoding to linalg.

// Vector is a dense vector value.
type Vector struct {
	leaf
	Vec linalg.Vector
}

// NewVector returns a vector value over the given payload.
func NewVector(v linalg.Vector) *Vector { return &Vector{Vec: v} }

func (v *Vector) value() {}

func (v *Vector) Evaluate(sc *Scope) (Value, error) { return v, nil }

func (v *Vector) Optimise() (Node, error) { return v, nil }

func (v *Vector) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigVector, args); err != nil {
		return nil, err
	}
	return NewVector(v.Vec.Clone()), nil
}

func (v *Vector) Signature() string { return SigVector }

func (v *Vector) WriteCode(w io.Writer) {
	io.WriteString(w, "vector([")
	for i, x := range v.Vec {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		io.WriteString(w, formatFloat(x))
	}
	io.WriteString(w, "])")
}

// Countable implements the Counter interface; a vector knows its own length.
func (v *Vector) Countable() bool { return true }

// Count implements the Counter interface.
func (v *Vector) Count() (int, error) { return v.Vec.Len(), nil }

// Matrix is a dense matrix value.
type Matrix struct {
	leaf
	Mat *linalg.Matrix
}

// NewMatrix returns a matrix value over the given payload.
func NewMatrix(m *linalg.Matrix) *Matrix { return &Matrix{Mat: m} }

func (m *Matrix) value() {}

func (m *Matrix) Evaluate(sc *Scope) (Value, error) { return m, nil }

func (m *Matrix) Optimise() (Node, error) { return m, nil }

func (m *Matrix) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigMatrix, args); err != nil {
		return nil, err
	}
	return NewMatrix(m.Mat.Clone()), nil
}

func (m *Matrix) Signature() string { return SigMatrix }

func (m *Matrix) WriteCode(w io.Writer) {
	fmt.Fprintf(w, "matrix(%d, %d, %v)", m.Mat.Rows(), m.Mat.Cols(), m.Mat.Data())
}

// Tensor is a dense tensor value.
type Tensor struct {
	leaf
	Ten *linalg.Tensor
}

// NewTensor returns a tensor value over the given payload.
func NewTensor(t *linalg.Tensor) *Tensor { return &Tensor{Ten: t} }

func (t *Tensor) value() {}

func (t *Tensor) Evaluate(sc *Scope) (Value, error) { return t, nil }

func (t *Tensor) Optimise() (Node, error) { return t, nil }

func (t *Tensor) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs(SigTensor, args); err != nil {
		return nil, err
	}
	return NewTensor(t.Ten.Clone()), nil
}

func (t *Tensor) Signature() string { return SigTensor }

func (t *Tensor) WriteCode(w io.Writer) {
	fmt.Fprintf(w, "tensor(%v, %v)", t.Ten.Shape(), t.Ten.Data())
}
