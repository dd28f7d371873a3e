package xpr

import "io"

// function is the base of every named function variant. It carries the
// variant's registered name and its ordered argument slots, and provides the
// parts of the node protocol that are uniform across variants: code
// rendering, structural cloning through the operator registry, and the
// default structure-preserving optimise pass.
type function struct {
	node
	name string
}

func newFunction(name string, args []Node) function {
	return function{node{args}, name}
}

// Name returns the registered operator name of the function.
func (f *function) Name() string { return f.name }

func (f *function) WriteCode(w io.Writer) {
	io.WriteString(w, f.name)
	io.WriteString(w, "(")
	for i, a := range f.args {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		a.WriteCode(w)
	}
	io.WriteString(w, ")")
}

// CloneWith rebuilds the variant over new arguments through the registry, so
// the variant's own constructor revalidates arity.
func (f *function) CloneWith(args ...Node) (Node, error) {
	return Build(f.name, args...)
}

// Optimise rebuilds the variant over its optimised arguments. Variants that
// can fold override this (see foldOptimise).
func (f *function) Optimise() (Node, error) {
	args, err := f.optimiseArgs()
	if err != nil {
		return nil, err
	}
	return Build(f.name, args...)
}

func (f *function) optimiseArgs() ([]Node, error) {
	args := make([]Node, len(f.args))
	for i, a := range f.args {
		o, err := a.Optimise()
		if err != nil {
			return nil, err
		}
		args[i] = o
	}
	return args, nil
}

// evalArg retrieves the i-th operand through Param and evaluates it, so that
// placeholder substitution stays transparent to the variant.
func (f *function) evalArg(i int, sc *Scope) (Value, error) {
	a, err := f.Param(i, sc)
	if err != nil {
		return nil, err
	}
	return a.Evaluate(sc)
}

// foldOptimise optimises a function's arguments and, when they have all been
// reduced to literal values, folds the function by evaluating it now. A tree
// containing a placeholder anywhere below is never folded, since a value
// cannot contain a placeholder. Folding is idempotent because values
// optimise to themselves.
func foldOptimise(f *function) (Node, error) {
	args, err := f.optimiseArgs()
	if err != nil {
		return nil, err
	}
	opt, err := Build(f.name, args...)
	if err != nil {
		return nil, err
	}
	for _, a := range args {
		if _, ok := a.(Value); !ok {
			return opt, nil
		}
	}
	return opt.Evaluate(NewScope())
}
