// Package transport defines the frame contract and middleware chain that
// connect the filestream response kit to a concrete transport.
//
// A streaming response is a strictly ordered sequence of frames sent over
// one Sender: a single start frame carrying the status code and the full
// header set, followed by body frames carrying bounded chunks. A body frame
// with more set to false terminates the stream. The Sender may suspend
// between frames (network backpressure, disk reads) but must never reorder
// or drop them.
//
// # Handler interface
//
// Handler is the contract between a transport adapter and the code that
// produces responses: it receives the request-side facts (method, path,
// headers) and a Sender, and drives the frames. pkg/response provides the
// standard implementations that stream files, byte buffers, text, and JSON.
//
// # Middleware
//
// Middleware wraps a Handler with cross-cutting concerns. Built-in
// middleware provides panic recovery, request ID assignment (X-Request-ID),
// and structured logging via log/slog.
//
// # Optional capabilities
//
// A Sender may additionally implement FileSender when the underlying
// transport can send a whole file by path more efficiently than manual
// chunking. Callers discover the capability with a type assertion.
package transport
