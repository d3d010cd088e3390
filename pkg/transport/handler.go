package transport

import "context"

// Handler produces one streaming response for one request. The
// implementation receives the request facts and writes the start and body
// frames to the Sender. An error returned before any frame was sent can
// still be translated into a clean error response by the adapter; an error
// after the start frame leaves the client with an incomplete stream.
type Handler interface {
	ServeStream(ctx context.Context, req *Request, s Sender) error
}

// HandlerFunc is an adapter that allows using an ordinary function as a
// Handler.
type HandlerFunc func(ctx context.Context, req *Request, s Sender) error

// ServeStream calls f(ctx, req, s).
func (f HandlerFunc) ServeStream(ctx context.Context, req *Request, s Sender) error {
	return f(ctx, req, s)
}
