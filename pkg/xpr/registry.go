package xpr

import "src.xpr.dev/pkg/xpr/errs"

// The operator registry maps operator names to constructors. Each builtin
// file registers its variants from an init function; the registry backs
// structural cloning, the JSON tree codec and the RPC service, which all
// need to build nodes of a variant known only by name.

type builder func(args []Node) (Node, error)

var builders = map[string]builder{}

func registerFns(fns map[string]builder) {
	for name, b := range fns {
		if _, ok := builders[name]; ok {
			panic("xpr: operator " + name + " registered twice")
		}
		builders[name] = b
	}
}

// Build constructs a function node of the named variant. The variant's
// constructor validates the argument count.
func Build(name string, args ...Node) (Node, error) {
	b, ok := builders[name]
	if !ok {
		return nil, errs.Unsupported{What: "operator " + name}
	}
	return b(args)
}

// mustBuild backs the typed constructors, whose signatures make an arity
// error impossible.
func mustBuild(name string, args ...Node) Node {
	n, err := Build(name, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// Operators returns the names of all registered operators.
func Operators() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}
