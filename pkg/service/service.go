// Package service exposes the evaluation API over JSON-RPC 2.0, and provides
// a client for it.
//
// Expressions travel in the self-describing JSON tree form of
// xpr.MarshalNode. The service is stateless between calls; when given a
// result store, it serves evaluations of fully bound trees through it.
package service

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/jsonrpc2"
	"src.xpr.dev/pkg/logutil"
	"src.xpr.dev/pkg/store"
	"src.xpr.dev/pkg/xpr"
)

var logger = logutil.GetLogger("[service] ")

// CodeEvalFailed is the JSON-RPC error code for expressions that were
// decoded successfully but failed to evaluate.
const CodeEvalFailed = -32000

// EvalParams are the parameters of the "xpr/eval" method.
type EvalParams struct {
	// Expr is the expression tree to evaluate.
	Expr json.RawMessage `json:"expr"`
	// Args are the pending arguments bound to the tree's placeholders, in
	// traversal order.
	Args []json.RawMessage `json:"args,omitempty"`
}

// EvalResult is the result of the "xpr/eval" method.
type EvalResult struct {
	Value json.RawMessage `json:"value"`
}

// ExprParams are the parameters of the "xpr/code" and "xpr/signature"
// methods.
type ExprParams struct {
	Expr json.RawMessage `json:"expr"`
}

// CodeResult is the result of the "xpr/code" method.
type CodeResult struct {
	Code string `json:"code"`
}

// SignatureResult is the result of the "xpr/signature" method.
type SignatureResult struct {
	Signature string `json:"signature"`
}

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	results store.ResultStore
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"xpr/eval":      s.eval,
		"xpr/code":      s.code,
		"xpr/signature": s.signature,
	})
}

type method func(context.Context, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		if req.Params == nil {
			return nil, errInvalidParams
		}
		return fn(ctx, *req.Params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) eval(_ context.Context, rawParams json.RawMessage) (any, error) {
	var params EvalParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, errInvalidParams
	}
	expr, err := xpr.UnmarshalNode(params.Expr)
	if err != nil {
		return nil, invalidExpr(err)
	}
	args := make([]xpr.Node, len(params.Args))
	for i, raw := range params.Args {
		arg, err := xpr.UnmarshalNode(raw)
		if err != nil {
			return nil, invalidExpr(err)
		}
		args[i] = arg
	}

	var v xpr.Value
	if s.results != nil && len(args) == 0 {
		v, err = store.CachedEval(s.results, expr)
	} else {
		v, err = xpr.Eval(expr, args...)
	}
	if err != nil {
		return nil, &jsonrpc2.Error{Code: CodeEvalFailed, Message: err.Error()}
	}
	raw, err := xpr.MarshalNode(v)
	if err != nil {
		return nil, &jsonrpc2.Error{Code: CodeEvalFailed, Message: err.Error()}
	}
	return &EvalResult{Value: raw}, nil
}

func (s *server) code(_ context.Context, rawParams json.RawMessage) (any, error) {
	expr, err := exprOf(rawParams)
	if err != nil {
		return nil, err
	}
	return &CodeResult{Code: xpr.Code(expr)}, nil
}

func (s *server) signature(_ context.Context, rawParams json.RawMessage) (any, error) {
	expr, err := exprOf(rawParams)
	if err != nil {
		return nil, err
	}
	return &SignatureResult{Signature: expr.Signature()}, nil
}

func exprOf(rawParams json.RawMessage) (xpr.Node, error) {
	var params ExprParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, errInvalidParams
	}
	expr, err := xpr.UnmarshalNode(params.Expr)
	if err != nil {
		return nil, invalidExpr(err)
	}
	return expr, nil
}

func invalidExpr(err error) error {
	return &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
}
