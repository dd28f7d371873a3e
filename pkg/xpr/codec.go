package xpr

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"src.xpr.dev/pkg/linalg"
	"src.xpr.dev/pkg/xpr/errs"
)

// Binary codec for values: a tag byte per kind followed by the payload.
// Numeric payloads use the linalg stream layout (shape, then raw element
// bytes) and share its limitation: everything is written in the machine's
// native byte order, so encoded values round-trip only on the architecture
// that produced them.

// A corrupt stream claiming a huge list must fail fast rather than force the
// allocation; element payload sizes are bounded by linalg's decoders.
const maxDecodeElems = 1 << 26

const (
	tagScalar byte = iota + 1
	tagBool
	tagVector
	tagMatrix
	tagTensor
	tagList
	tagMissing
)

// EncodeValue writes the binary encoding of a value to w.
func EncodeValue(w io.Writer, v Value) error {
	switch v := v.(type) {
	case *Scalar:
		if err := writeTag(w, tagScalar); err != nil {
			return err
		}
		var b [8]byte
		binary.NativeEndian.PutUint64(b[:], math.Float64bits(v.Val))
		_, err := w.Write(b[:])
		return err
	case *Bool:
		var pay byte
		if v.Val {
			pay = 1
		}
		if err := writeTag(w, tagBool); err != nil {
			return err
		}
		return writeTag(w, pay)
	case *Vector:
		if err := writeTag(w, tagVector); err != nil {
			return err
		}
		return v.Vec.Encode(w)
	case *Matrix:
		if err := writeTag(w, tagMatrix); err != nil {
			return err
		}
		return v.Mat.Encode(w)
	case *Tensor:
		if err := writeTag(w, tagTensor); err != nil {
			return err
		}
		return v.Ten.Encode(w)
	case *List:
		if err := writeTag(w, tagList); err != nil {
			return err
		}
		var b [8]byte
		binary.NativeEndian.PutUint64(b[:], uint64(len(v.Elems)))
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
		for _, e := range v.Elems {
			if err := EncodeValue(w, e); err != nil {
				return err
			}
		}
		return nil
	case *MissingValue:
		return writeTag(w, tagMissing)
	}
	return errs.Unsupported{What: "encoding " + Kind(v)}
}

// DecodeValue reads a value encoded by EncodeValue.
func DecodeValue(r io.Reader) (Value, error) {
	tag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagScalar:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return NewScalar(math.Float64frombits(binary.NativeEndian.Uint64(b[:]))), nil
	case tagBool:
		pay, err := readTag(r)
		if err != nil {
			return nil, err
		}
		return NewBool(pay != 0), nil
	case tagVector:
		vec, err := linalg.DecodeVector(r)
		if err != nil {
			return nil, err
		}
		return NewVector(vec), nil
	case tagMatrix:
		mat, err := linalg.DecodeMatrix(r)
		if err != nil {
			return nil, err
		}
		return NewMatrix(mat), nil
	case tagTensor:
		ten, err := linalg.DecodeTensor(r)
		if err != nil {
			return nil, err
		}
		return NewTensor(ten), nil
	case tagList:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		n := int(binary.NativeEndian.Uint64(b[:]))
		if n < 0 || n > maxDecodeElems {
			return nil, fmt.Errorf("xpr: decoded list length %d out of bounds", n)
		}
		elems := make([]Value, n)
		for i := range elems {
			e, err := DecodeValue(r)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return NewList(elems...), nil
	case tagMissing:
		return Missing(), nil
	}
	return nil, fmt.Errorf("xpr: unknown value tag %d", tag)
}

func writeTag(w io.Writer, tag byte) error {
	_, err := w.Write([]byte{tag})
	return err
}

func readTag(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
