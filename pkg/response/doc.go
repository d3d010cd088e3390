// Package response streams file-like content to an HTTP client as a
// sequence of bounded chunks over a transport.Sender, attaching
// content-disposition and cache-identity headers (Content-Length,
// Last-Modified, ETag) derived from the content's size and modification
// time.
//
// Four content sources are provided: on-disk files (NewFile), in-memory
// byte buffers (NewBytes), text (NewText), and JSON payloads (NewJSON).
// All of them share one send lifecycle, driven by Send: resolve metadata,
// emit the start frame, stream body chunks in order, run the post-send
// hook, then fire the optional background task exactly once.
//
// The body is never buffered in full: memory use is constant relative to
// body size, which is the point of streaming file content instead of
// materializing it.
package response
