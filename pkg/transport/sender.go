package transport

import (
	"context"
	"net/http"
)

// Sender is the output side of one streaming exchange. Implementations
// receive the frames of exactly one response, in order: one SendStart,
// then zero or more SendChunk calls, the last of which has more=false.
//
// SendChunk may block (and the calling goroutine may be suspended) between
// frames, but frames must be delivered in call order.
type Sender interface {
	// SendStart emits the start frame with the status code and the full
	// header set. It must be called exactly once, before any body frame.
	SendStart(ctx context.Context, status int, header http.Header) error

	// SendChunk emits one body frame. more indicates whether further body
	// frames follow; the frame with more=false terminates the stream and
	// no frame may be sent after it.
	//
	// The body slice is only valid for the duration of the call: the
	// send loop reuses its chunk buffer. Implementations that retain the
	// bytes must copy them.
	SendChunk(ctx context.Context, body []byte, more bool) error
}

// FileSender is an optional Sender extension for transports that can send
// an entire file by path (for example via an OS sendfile path) instead of
// manual chunking. SendFile replaces the whole body-frame sequence; it is
// only valid after SendStart and completes the stream.
type FileSender interface {
	Sender

	SendFile(ctx context.Context, path string) error
}

// Request carries the request-side facts a streaming handler needs.
// It is deliberately smaller than http.Request: the response kit only
// inspects the method (HEAD suppresses the body) and, for logging and
// routing, the path and headers.
type Request struct {
	Method string
	Path   string
	Header http.Header
}
