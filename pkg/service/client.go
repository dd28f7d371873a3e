package service

import (
	"context"
	"io"
	"net"

	"github.com/sourcegraph/jsonrpc2"
	"src.xpr.dev/pkg/xpr"
	"src.xpr.dev/pkg/xpr/errs"
)

// Client is a typed client of the evaluation service.
type Client struct {
	conn *jsonrpc2.Conn
}

// Dial connects to a service listening on a TCP address.
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, conn), nil
}

// NewClient returns a client over an established connection.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	return &Client{newConn(ctx, rwc, noopHandler{})}
}

// Close closes the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// Eval evaluates an expression remotely, binding placeholders from args in
// traversal order.
func (c *Client) Eval(ctx context.Context, expr xpr.Node, args ...xpr.Node) (xpr.Value, error) {
	rawExpr, err := xpr.MarshalNode(expr)
	if err != nil {
		return nil, err
	}
	params := EvalParams{Expr: rawExpr}
	for _, arg := range args {
		raw, err := xpr.MarshalNode(arg)
		if err != nil {
			return nil, err
		}
		params.Args = append(params.Args, raw)
	}
	var result EvalResult
	if err := c.conn.Call(ctx, "xpr/eval", params, &result); err != nil {
		return nil, err
	}
	n, err := xpr.UnmarshalNode(result.Value)
	if err != nil {
		return nil, err
	}
	v, ok := n.(xpr.Value)
	if !ok {
		// The service only ever returns values; a non-value reply means a
		// protocol mismatch.
		return nil, errs.BadValue{What: "reply from service",
			Valid: "a value", Actual: xpr.Kind(n)}
	}
	return v, nil
}

// Code returns the deterministic code rendering of an expression.
func (c *Client) Code(ctx context.Context, expr xpr.Node) (string, error) {
	raw, err := xpr.MarshalNode(expr)
	if err != nil {
		return "", err
	}
	var result CodeResult
	if err := c.conn.Call(ctx, "xpr/code", ExprParams{Expr: raw}, &result); err != nil {
		return "", err
	}
	return result.Code, nil
}

// Signature returns the declared result signature of an expression.
func (c *Client) Signature(ctx context.Context, expr xpr.Node) (string, error) {
	raw, err := xpr.MarshalNode(expr)
	if err != nil {
		return "", err
	}
	var result SignatureResult
	if err := c.conn.Call(ctx, "xpr/signature", ExprParams{Expr: raw}, &result); err != nil {
		return "", err
	}
	return result.Signature, nil
}

type noopHandler struct{}

func (noopHandler) Handle(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) {}
