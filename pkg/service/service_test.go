package service

import (
	"context"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/jsonrpc2"
	"src.xpr.dev/pkg/must"
	"src.xpr.dev/pkg/store"
	"src.xpr.dev/pkg/xpr"
)

var bg = context.Background()

func startService(t *testing.T, opts ServeOpts) *Client {
	t.Helper()
	serverEnd, clientEnd := net.Pipe()
	go ServeConn(bg, serverEnd, opts)
	cl := NewClient(bg, clientEnd)
	t.Cleanup(func() { cl.Close() })
	return cl
}

func checkValue(t *testing.T, got, want xpr.Value) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.Comparer(xpr.Equal)); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestEval(t *testing.T) {
	cl := startService(t, ServeOpts{})
	v, err := cl.Eval(bg, xpr.NewAdd(xpr.NewScalar(1), xpr.NewScalar(2)))
	if err != nil {
		t.Fatalf("Eval -> error %v", err)
	}
	checkValue(t, v, xpr.NewScalar(3))
}

func TestEvalBindsArgs(t *testing.T) {
	cl := startService(t, ServeOpts{})
	tree := xpr.NewZipWith(xpr.NewMul(xpr.Undefined(), xpr.Undefined()),
		xpr.Undefined(), xpr.Undefined())
	lhs := xpr.NewList(xpr.NewScalar(2), xpr.NewScalar(3))
	rhs := xpr.NewList(xpr.NewScalar(10), xpr.NewScalar(10))
	v, err := cl.Eval(bg, tree, lhs, rhs)
	if err != nil {
		t.Fatalf("Eval -> error %v", err)
	}
	checkValue(t, v, xpr.NewList(xpr.NewScalar(20), xpr.NewScalar(30)))
}

func TestEvalFailure(t *testing.T) {
	cl := startService(t, ServeOpts{})
	_, err := cl.Eval(bg, xpr.NewAdd(xpr.Undefined(), xpr.NewScalar(2)))
	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("Eval -> error %v, want a *jsonrpc2.Error", err)
	}
	if rpcErr.Code != CodeEvalFailed {
		t.Errorf("error code %d, want %d", rpcErr.Code, CodeEvalFailed)
	}
}

func TestEvalRejectsBadExpr(t *testing.T) {
	cl := startService(t, ServeOpts{})
	var result EvalResult
	err := cl.conn.Call(bg, "xpr/eval",
		EvalParams{Expr: []byte(`{"fn": "frobnicate"}`)}, &result)
	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("call -> error %v, want a *jsonrpc2.Error", err)
	}
	if rpcErr.Code != jsonrpc2.CodeInvalidParams {
		t.Errorf("error code %d, want %d", rpcErr.Code, jsonrpc2.CodeInvalidParams)
	}
}

func TestUnknownMethod(t *testing.T) {
	cl := startService(t, ServeOpts{})
	err := cl.conn.Call(bg, "xpr/frobnicate", struct{}{}, nil)
	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("call -> error %v, want a *jsonrpc2.Error", err)
	}
	if rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("error code %d, want %d", rpcErr.Code, jsonrpc2.CodeMethodNotFound)
	}
}

func TestCode(t *testing.T) {
	cl := startService(t, ServeOpts{})
	code, err := cl.Code(bg, xpr.NewCount(xpr.Undefined()))
	if err != nil {
		t.Fatalf("Code -> error %v", err)
	}
	if want := "count(undefined())"; code != want {
		t.Errorf("Code -> %q, want %q", code, want)
	}
}

func TestSignature(t *testing.T) {
	cl := startService(t, ServeOpts{})
	sig, err := cl.Signature(bg, xpr.NewCount(xpr.Undefined()))
	if err != nil {
		t.Fatalf("Signature -> error %v", err)
	}
	if sig != xpr.SigScalar {
		t.Errorf("Signature -> %q, want %q", sig, xpr.SigScalar)
	}
}

func TestEvalUsesResultStore(t *testing.T) {
	st, cleanup := store.MustTempStore()
	defer cleanup()
	cl := startService(t, ServeOpts{Results: st})

	tree := xpr.NewAdd(xpr.NewScalar(1), xpr.NewScalar(2))
	v := must.OK1(cl.Eval(bg, tree))
	checkValue(t, v, xpr.NewScalar(3))
	if _, err := st.GetResult(xpr.Code(tree)); err != nil {
		t.Errorf("evaluation left no store entry, GetResult -> error %v", err)
	}
}

func TestServe(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Listen -> error %v", err)
	}
	defer listener.Close()
	ready := make(chan struct{})
	go Serve(listener, ServeOpts{Ready: ready})
	<-ready

	cl, err := Dial(bg, listener.Addr().String())
	if err != nil {
		t.Fatalf("Dial -> error %v", err)
	}
	defer cl.Close()
	v := must.OK1(cl.Eval(bg, xpr.NewNeg(xpr.NewScalar(4))))
	checkValue(t, v, xpr.NewScalar(-4))
}
