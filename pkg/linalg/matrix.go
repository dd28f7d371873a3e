package linalg

import "fmt"

// Matrix is a dense matrix in column-major storage order.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// NewMatrix returns a zero-initialized rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid matrix shape %dx%d", rows, cols))
	}
	return &Matrix{data: make([]float64, rows*cols), rows: rows, cols: cols}
}

// NewMatrixData returns a rows x cols matrix over the given column-major
// data, which must have exactly rows*cols elements. The matrix takes
// ownership of the slice.
func NewMatrixData(rows, cols int, data []float64) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid matrix shape %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("linalg: matrix data has %d elements, shape %dx%d needs %d",
			len(data), rows, cols, rows*cols))
	}
	return &Matrix{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Size returns the total number of elements.
func (m *Matrix) Size() int { return len(m.data) }

// At returns the element at row i, column j. It panics if either index is out
// of bounds.
func (m *Matrix) At(i, j int) float64 {
	checkIndex("matrix row", i, m.rows)
	checkIndex("matrix column", j, m.cols)
	return m.data[i+j*m.rows]
}

// Set assigns the element at row i, column j. It panics if either index is
// out of bounds.
func (m *Matrix) Set(i, j int, x float64) {
	checkIndex("matrix row", i, m.rows)
	checkIndex("matrix column", j, m.cols)
	m.data[i+j*m.rows] = x
}

// Zero sets all elements to zero.
func (m *Matrix) Zero() { m.Fill(0) }

// Fill sets all elements to x.
func (m *Matrix) Fill(x float64) {
	for i := range m.data {
		m.data[i] = x
	}
}

// Data returns the underlying contiguous column-major storage.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a copy sharing no storage with m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{data: data, rows: m.rows, cols: m.cols}
}
