package xpr

// Signatures are the statically declared result kinds of nodes. A node's
// signature depends only on its variant (and, for some functions, on the
// declared signatures of its arguments), never on runtime values, so
// compose-time compatibility can be checked before an expensive evaluation
// is attempted.
const (
	SigScalar  = "scalar"
	SigBoolean = "boolean"
	SigVector  = "vector"
	SigMatrix  = "matrix"
	SigTensor  = "tensor"
	SigList    = "list"
	SigMissing = "missing"

	// SigUnknown is the signature of nodes whose result kind cannot be
	// declared statically, such as placeholders.
	SigUnknown = "?"
)
