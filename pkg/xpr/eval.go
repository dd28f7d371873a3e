package xpr

import "src.xpr.dev/pkg/xpr/errs"

// Eval runs an expression tree to a final value. The supplied arguments seed
// a fresh scope in call order; the tree is optimised, then evaluated, with
// each placeholder in the tree bound from the scope in the left-to-right
// depth-first order in which evaluation reaches it. The caller's argument
// order must match that traversal order exactly.
//
// Supplying fewer arguments than the tree has placeholders surfaces an arity
// error when the scope runs dry; supplying more surfaces an arity error here,
// after evaluation, when the scope is found not fully consumed.
func Eval(n Node, args ...Node) (Value, error) {
	sc := NewScope(args...)
	opt, err := n.Optimise()
	if err != nil {
		return nil, err
	}
	v, err := opt.Evaluate(sc)
	if err != nil {
		return nil, err
	}
	if left := sc.Len(); left > 0 {
		used := len(args) - left
		return nil, errs.ArityMismatch{What: "arguments to eval",
			ValidLow: used, ValidHigh: used, Actual: len(args)}
	}
	return v, nil
}
