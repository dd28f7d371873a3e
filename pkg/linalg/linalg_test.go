package linalg

import (
	"bytes"
	"testing"

	"src.xpr.dev/pkg/tt"
)

func TestFlatten(t *testing.T) {
	tt.Test(t, tt.Fn("Flatten", Flatten), tt.Table{
		tt.Args([]int{4}).Rets(4),
		tt.Args([]int{2, 3}).Rets(6),
		tt.Args([]int{2, 3, 4}).Rets(24),
		tt.Args([]int{}).Rets(1),
	})
}

func TestVector(t *testing.T) {
	v := NewVector(3)
	if v.Len() != 3 {
		t.Fatalf("Len -> %d, want 3", v.Len())
	}
	v.Fill(1.5)
	v.Set(1, -2)
	if got := v.At(1); got != -2 {
		t.Errorf("At(1) -> %v, want -2", got)
	}
	if got := v.At(2); got != 1.5 {
		t.Errorf("At(2) -> %v, want 1.5", got)
	}
	v.Zero()
	if got := v.At(0); got != 0 {
		t.Errorf("At(0) after Zero -> %v, want 0", got)
	}
}

func TestMatrixColumnMajorLayout(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 2, 42)
	// Element (i, j) lives at i + j*rows.
	if got := m.Data()[1+2*2]; got != 42 {
		t.Errorf("Data()[5] -> %v, want 42", got)
	}
	if got := m.At(1, 2); got != 42 {
		t.Errorf("At(1, 2) -> %v, want 42", got)
	}
	if m.Rows() != 2 || m.Cols() != 3 || m.Size() != 6 {
		t.Errorf("shape -> %dx%d size %d, want 2x3 size 6",
			m.Rows(), m.Cols(), m.Size())
	}
}

func TestTensorColumnMajorLayout(t *testing.T) {
	ten := NewTensor([]int{2, 3, 4})
	ten.Set(42, 1, 2, 3)
	// The first index varies fastest.
	if got := ten.Data()[1+2*(2+3*3)]; got != 42 {
		t.Errorf("Data()[23] -> %v, want 42", got)
	}
	if got := ten.At(1, 2, 3); got != 42 {
		t.Errorf("At(1, 2, 3) -> %v, want 42", got)
	}
	if ten.Rank() != 3 || ten.Size() != 24 {
		t.Errorf("rank %d size %d, want rank 3 size 24", ten.Rank(), ten.Size())
	}
}

func TestTensorIndexChecks(t *testing.T) {
	ten := NewTensor([]int{2, 3})
	checkPanics(t, "rank mismatch", func() { ten.At(1) })
	checkPanics(t, "out of bounds", func() { ten.At(0, 3) })
	checkPanics(t, "negative index", func() { ten.At(-1, 0) })
}

func TestMatrixIndexChecks(t *testing.T) {
	m := NewMatrix(2, 2)
	checkPanics(t, "row out of bounds", func() { m.At(2, 0) })
	checkPanics(t, "column out of bounds", func() { m.At(0, 2) })
}

func checkPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestCloneSharesNoStorage(t *testing.T) {
	m := NewMatrix(2, 2)
	c := m.Clone()
	c.Set(0, 0, 1)
	if m.At(0, 0) != 0 {
		t.Error("mutating a clone changed the original")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	v := Vector{1, 2.5, -3}
	var buf bytes.Buffer
	if err := v.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	gotV, err := DecodeVector(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotV) != 3 || gotV[0] != 1 || gotV[1] != 2.5 || gotV[2] != -3 {
		t.Errorf("vector round trip -> %v", gotV)
	}

	m := NewMatrix(2, 3)
	m.Set(1, 2, 42)
	buf.Reset()
	if err := m.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	gotM, err := DecodeMatrix(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if gotM.Rows() != 2 || gotM.Cols() != 3 || gotM.At(1, 2) != 42 {
		t.Errorf("matrix round trip -> %dx%d", gotM.Rows(), gotM.Cols())
	}

	ten := NewTensor([]int{2, 2, 2})
	ten.Set(-1, 1, 1, 1)
	buf.Reset()
	if err := ten.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	gotT, err := DecodeTensor(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if gotT.Rank() != 3 || gotT.At(1, 1, 1) != -1 {
		t.Errorf("tensor round trip -> rank %d", gotT.Rank())
	}
}

func TestDecodeRejectsOversizedShapes(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSize(&buf, maxDecodeElems+1); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeVector(&buf); err == nil {
		t.Error("decoding an oversized vector length succeeded")
	}

	buf.Reset()
	if err := writeSize(&buf, maxDecodeRank+1); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeTensor(&buf); err == nil {
		t.Error("decoding an oversized tensor rank succeeded")
	}

	buf.Reset()
	if err := writeSize(&buf, maxDecodeElems+1); err != nil {
		t.Fatal(err)
	}
	if err := writeSize(&buf, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeMatrix(&buf); err == nil {
		t.Error("decoding an oversized matrix shape succeeded")
	}
}

func TestDecodeTruncated(t *testing.T) {
	v := Vector{1, 2, 3}
	var buf bytes.Buffer
	if err := v.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if _, err := DecodeVector(bytes.NewReader(data[:len(data)-1])); err == nil {
		t.Error("decoding a truncated vector succeeded")
	}
}
