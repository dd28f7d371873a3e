package xpr

import (
	"encoding/json"

	"src.xpr.dev/pkg/linalg"
	"src.xpr.dev/pkg/xpr/errs"
)

// Self-describing JSON form of expression trees. Functions carry their
// registered operator name and arguments; each value kind has its own tagged
// field. The form round-trips any authored tree and is the wire format of
// the RPC service. No node encodes to an empty object: an empty list value
// is encoded as the list constructor with no arguments, and the vector field
// is a pointer so an empty vector keeps its tag on the wire.

type jsonExpr struct {
	Fn      string      `json:"fn,omitempty"`
	Args    []*jsonExpr `json:"args,omitempty"`
	Scalar  *float64    `json:"scalar,omitempty"`
	Bool    *bool       `json:"bool,omitempty"`
	Vector  *[]float64  `json:"vector,omitempty"`
	Matrix  *jsonMatrix `json:"matrix,omitempty"`
	Tensor  *jsonTensor `json:"tensor,omitempty"`
	List    []*jsonExpr `json:"list,omitempty"`
	Missing bool        `json:"missing,omitempty"`
	Undef   bool        `json:"undef,omitempty"`
}

type jsonMatrix struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

type jsonTensor struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// MarshalNode encodes an expression tree as JSON.
func MarshalNode(n Node) ([]byte, error) {
	j, err := nodeToJSON(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

// UnmarshalNode decodes an expression tree from JSON, building function
// nodes through the operator registry.
func UnmarshalNode(data []byte) (Node, error) {
	var j jsonExpr
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return nodeFromJSON(&j)
}

func nodeToJSON(n Node) (*jsonExpr, error) {
	switch n := n.(type) {
	case *Scalar:
		return &jsonExpr{Scalar: &n.Val}, nil
	case *Bool:
		return &jsonExpr{Bool: &n.Val}, nil
	case *Vector:
		vec := make([]float64, n.Vec.Len())
		copy(vec, n.Vec)
		return &jsonExpr{Vector: &vec}, nil
	case *Matrix:
		return &jsonExpr{Matrix: &jsonMatrix{
			Rows: n.Mat.Rows(), Cols: n.Mat.Cols(), Data: n.Mat.Data()}}, nil
	case *Tensor:
		return &jsonExpr{Tensor: &jsonTensor{
			Shape: n.Ten.Shape(), Data: n.Ten.Data()}}, nil
	case *MissingValue:
		return &jsonExpr{Missing: true}, nil
	case *Undef:
		return &jsonExpr{Undef: true}, nil
	case *List:
		if len(n.Elems) == 0 {
			return &jsonExpr{Fn: "list"}, nil
		}
		elems := make([]*jsonExpr, len(n.Elems))
		for i, e := range n.Elems {
			j, err := nodeToJSON(e)
			if err != nil {
				return nil, err
			}
			elems[i] = j
		}
		return &jsonExpr{List: elems}, nil
	}
	f, ok := n.(interface{ Name() string })
	if !ok {
		return nil, errs.Unsupported{What: "encoding " + Kind(n)}
	}
	args := make([]*jsonExpr, n.Arity())
	for i := range args {
		a, err := n.Param(i, nil)
		if err != nil {
			return nil, err
		}
		j, err := nodeToJSON(a)
		if err != nil {
			return nil, err
		}
		args[i] = j
	}
	return &jsonExpr{Fn: f.Name(), Args: args}, nil
}

func nodeFromJSON(j *jsonExpr) (Node, error) {
	switch {
	case j.Fn != "":
		args := make([]Node, len(j.Args))
		for i, a := range j.Args {
			n, err := nodeFromJSON(a)
			if err != nil {
				return nil, err
			}
			args[i] = n
		}
		return Build(j.Fn, args...)
	case j.Scalar != nil:
		return NewScalar(*j.Scalar), nil
	case j.Bool != nil:
		return NewBool(*j.Bool), nil
	case j.Vector != nil:
		return NewVector(linalg.Vector(*j.Vector)), nil
	case j.Matrix != nil:
		m := j.Matrix
		if m.Rows <= 0 || m.Cols <= 0 || len(m.Data) != m.Rows*m.Cols {
			return nil, errs.BadValue{What: "matrix node",
				Valid:  "positive shape with matching data length",
				Actual: lengthsText(m.Rows*m.Cols, len(m.Data))}
		}
		return NewMatrix(linalg.NewMatrixData(m.Rows, m.Cols, m.Data)), nil
	case j.Tensor != nil:
		t := j.Tensor
		if len(t.Shape) == 0 || minDim(t.Shape) <= 0 ||
			len(t.Data) != linalg.Flatten(t.Shape) {
			return nil, errs.BadValue{What: "tensor node",
				Valid:  "positive shape with matching data length",
				Actual: lengthsText(linalg.Flatten(t.Shape), len(t.Data))}
		}
		return NewTensor(linalg.NewTensorData(t.Shape, t.Data)), nil
	case j.List != nil:
		elems := make([]Value, len(j.List))
		for i, e := range j.List {
			n, err := nodeFromJSON(e)
			if err != nil {
				return nil, err
			}
			v, ok := n.(Value)
			if !ok {
				return nil, errs.BadValue{What: "list element",
					Valid: "a value", Actual: Kind(n)}
			}
			elems[i] = v
		}
		return NewList(elems...), nil
	case j.Missing:
		return Missing(), nil
	case j.Undef:
		return Undefined(), nil
	}
	return nil, errs.BadValue{What: "expression node",
		Valid: "a function, value or placeholder", Actual: "empty object"}
}

func minDim(shape []int) int {
	m := shape[0]
	for _, d := range shape[1:] {
		if d < m {
			m = d
		}
	}
	return m
}
