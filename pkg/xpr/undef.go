package xpr

import (
	"io"

	"src.xpr.dev/pkg/xpr/errs"
)

// Undef is the placeholder node: an argument slot deferred to be filled from
// the scope when evaluation reaches it. Placeholders have tree-wide scope; a
// placeholder nested arbitrarily deep is bound from the same scope as one at
// the top level, in depth-first left-to-right order.
type Undef struct {
	leaf
}

// Undefined returns a placeholder node.
func Undefined() *Undef { return &Undef{} }

// IsUndef reports whether n is a placeholder. Scope consumption is tied
// strictly to this syntactic test on the authored tree: only an argument
// slot that is literally a placeholder pulls from the scope.
func IsUndef(n Node) bool {
	_, ok := n.(*Undef)
	return ok
}

// Evaluate on a placeholder means the node was never substituted: the tree
// has more placeholders than the caller supplied arguments, or the
// placeholder sits somewhere Param-based substitution cannot reach.
func (u *Undef) Evaluate(sc *Scope) (Value, error) {
	return nil, errs.UnboundPlaceholder{}
}

func (u *Undef) Optimise() (Node, error) { return u, nil }

func (u *Undef) CloneWith(args ...Node) (Node, error) {
	if err := cloneLeafArgs("placeholder", args); err != nil {
		return nil, err
	}
	return Undefined(), nil
}

func (u *Undef) Signature() string { return SigUnknown }

func (u *Undef) WriteCode(w io.Writer) {
	io.WriteString(w, "undefined()")
}

// HasPlaceholder reports whether any node of the tree is a placeholder.
func HasPlaceholder(n Node) bool {
	if IsUndef(n) {
		return true
	}
	for i := 0; i < n.Arity(); i++ {
		arg, err := n.Param(i, nil)
		if err != nil {
			continue
		}
		if HasPlaceholder(arg) {
			return true
		}
	}
	return false
}
