package service

import (
	"context"
	"io"
	"net"

	"github.com/sourcegraph/jsonrpc2"
	"src.xpr.dev/pkg/store"
)

// ServeOpts keeps options that can be passed to Serve.
type ServeOpts struct {
	// If not nil, evaluations of fully bound trees go through this result
	// store.
	Results store.ResultStore
	// If not nil, will be closed when the service is ready to accept
	// connections.
	Ready chan<- struct{}
}

// Serve accepts connections on the listener and serves the evaluation
// service on each, one goroutine per connection, until the listener is
// closed.
func Serve(listener net.Listener, opts ServeOpts) error {
	s := &server{results: opts.Results}
	h := handler(s)
	if opts.Ready != nil {
		close(opts.Ready)
	}
	logger.Println("listening on", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Println("stopped accepting:", err)
			return err
		}
		logger.Println("new client", conn.RemoteAddr())
		go func() {
			rpcConn := newConn(context.Background(), conn, h)
			<-rpcConn.DisconnectNotify()
			logger.Println("client gone", conn.RemoteAddr())
		}()
	}
}

// ServeConn serves the evaluation service on a single connection, for
// transports that are not network listeners. It returns when the connection
// is closed.
func ServeConn(ctx context.Context, rwc io.ReadWriteCloser, opts ServeOpts) {
	rpcConn := newConn(ctx, rwc, handler(&server{results: opts.Results}))
	<-rpcConn.DisconnectNotify()
}

func newConn(ctx context.Context, rwc io.ReadWriteCloser, h jsonrpc2.Handler) *jsonrpc2.Conn {
	return jsonrpc2.NewConn(
		ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), h)
}
