package linalg

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Binary stream layout for the dense containers: the number of dimensions
// (except for Vector, which always has one), each dimension, then the raw
// element bytes. All of it is written in the byte order of the machine, so
// the encoding is NOT portable between architectures of differing endianness
// or word layout; it round-trips only on the architecture that produced it.

// Sizes decoded from a stream are bounded, so a corrupt entry fails fast
// instead of forcing an allocation proportional to a bogus 64-bit length.
const (
	maxDecodeElems = 1 << 26
	maxDecodeRank  = 64
)

func writeSize(w io.Writer, n int) error {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(n))
	_, err := w.Write(b[:])
	return err
}

func readSize(r io.Reader) (int, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int(binary.NativeEndian.Uint64(b[:])), nil
}

func writeFloats(w io.Writer, data []float64) error {
	buf := make([]byte, 8*len(data))
	for i, x := range data {
		binary.NativeEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	_, err := w.Write(buf)
	return err
}

func readFloats(r io.Reader, n int) ([]float64, error) {
	if n < 0 || n > maxDecodeElems {
		return nil, fmt.Errorf("linalg: decoded element count %d out of bounds", n)
	}
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Float64frombits(binary.NativeEndian.Uint64(buf[8*i:]))
	}
	return data, nil
}

// Encode writes the vector's length and raw elements to w.
func (v Vector) Encode(w io.Writer) error {
	if err := writeSize(w, len(v)); err != nil {
		return err
	}
	return writeFloats(w, v)
}

// DecodeVector reads a vector encoded by Vector.Encode.
func DecodeVector(r io.Reader) (Vector, error) {
	n, err := readSize(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("linalg: decoded negative vector size %d", n)
	}
	data, err := readFloats(r, n)
	if err != nil {
		return nil, err
	}
	return Vector(data), nil
}

// Encode writes the matrix's shape and raw column-major elements to w.
func (m *Matrix) Encode(w io.Writer) error {
	if err := writeSize(w, m.rows); err != nil {
		return err
	}
	if err := writeSize(w, m.cols); err != nil {
		return err
	}
	return writeFloats(w, m.data)
}

// DecodeMatrix reads a matrix encoded by Matrix.Encode.
func DecodeMatrix(r io.Reader) (*Matrix, error) {
	rows, err := readSize(r)
	if err != nil {
		return nil, err
	}
	cols, err := readSize(r)
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 || rows > maxDecodeElems || cols > maxDecodeElems {
		return nil, fmt.Errorf("linalg: decoded invalid matrix shape %dx%d", rows, cols)
	}
	data, err := readFloats(r, rows*cols)
	if err != nil {
		return nil, err
	}
	return &Matrix{data: data, rows: rows, cols: cols}, nil
}

// Encode writes the tensor's rank, dimensions and raw column-major elements
// to w.
func (t *Tensor) Encode(w io.Writer) error {
	if err := writeSize(w, len(t.shape)); err != nil {
		return err
	}
	for _, d := range t.shape {
		if err := writeSize(w, d); err != nil {
			return err
		}
	}
	return writeFloats(w, t.data)
}

// DecodeTensor reads a tensor encoded by Tensor.Encode.
func DecodeTensor(r io.Reader) (*Tensor, error) {
	rank, err := readSize(r)
	if err != nil {
		return nil, err
	}
	if rank <= 0 || rank > maxDecodeRank {
		return nil, fmt.Errorf("linalg: decoded invalid tensor rank %d", rank)
	}
	shape := make([]int, rank)
	for i := range shape {
		d, err := readSize(r)
		if err != nil {
			return nil, err
		}
		if d <= 0 || d > maxDecodeElems {
			return nil, fmt.Errorf("linalg: decoded invalid tensor dimension %d", d)
		}
		shape[i] = d
	}
	data, err := readFloats(r, Flatten(shape))
	if err != nil {
		return nil, err
	}
	return &Tensor{data: data, shape: shape}, nil
}
