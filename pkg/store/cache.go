package store

import (
	"bytes"
	"errors"

	"src.xpr.dev/pkg/xpr"
)

// CachedEval evaluates a tree, consulting the store first. Only trees with
// no placeholders are cacheable; a tree with placeholders is evaluated
// directly (and will surface the usual arity error for the missing
// arguments). Store read failures other than a plain miss are returned, not
// papered over with a fresh evaluation.
func CachedEval(st ResultStore, n xpr.Node) (xpr.Value, error) {
	if xpr.HasPlaceholder(n) {
		return xpr.Eval(n)
	}
	code := xpr.Code(n)
	data, err := st.GetResult(code)
	if err == nil {
		return xpr.DecodeValue(bytes.NewReader(data))
	}
	if !errors.Is(err, ErrNoResult) {
		return nil, err
	}
	v, err := xpr.Eval(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := xpr.EncodeValue(&buf, v); err != nil {
		return nil, err
	}
	if err := st.PutResult(code, buf.Bytes()); err != nil {
		return nil, err
	}
	return v, nil
}
