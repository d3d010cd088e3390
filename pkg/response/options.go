package response

import (
	"io/fs"
	"time"
)

// Option configures a Response at construction time.
type Option func(*Response)

// WithStatus sets the response status code (default 200).
func WithStatus(code int) Option {
	return func(r *Response) { r.StatusCode = code }
}

// WithHeader sets a single header. Caller-supplied headers are never
// overwritten by derived metadata.
func WithHeader(key, value string) Option {
	return func(r *Response) { r.Header.Set(key, value) }
}

// WithHeaders sets multiple headers at once.
func WithHeaders(h map[string]string) Option {
	return func(r *Response) {
		for k, v := range h {
			r.Header.Set(k, v)
		}
	}
}

// WithMediaType overrides the media type guessed from the filename
// extension.
func WithMediaType(mt string) Option {
	return func(r *Response) { r.MediaType = mt }
}

// WithFilename sets the download filename used for the
// content-disposition header and media-type guessing. The in-memory
// constructors take the filename directly; this option is for NewFile,
// where the filename is optional.
func WithFilename(name string) Option {
	return func(r *Response) { r.Filename = name }
}

// WithDisposition sets the content-disposition mode, DispositionAttachment
// (default) or DispositionInline.
func WithDisposition(mode string) Option {
	return func(r *Response) { r.Disposition = mode }
}

// WithBackground sets the cleanup task run exactly once after the body
// and hooks have completed.
func WithBackground(task BackgroundTask) Option {
	return func(r *Response) { r.Background = task }
}

// WithSize sets an explicit content size, bypassing the default derived
// from the content at resolve time.
func WithSize(size int64) Option {
	return func(r *Response) { r.Size = size }
}

// WithModTime sets an explicit modification time, bypassing the default
// derived at resolve time.
func WithModTime(t time.Time) Option {
	return func(r *Response) { r.ModTime = t }
}

// WithChunkSize overrides the body-frame payload threshold
// (default DefaultChunkSize).
func WithChunkSize(n int) Option {
	return func(r *Response) { r.ChunkSize = n }
}

// WithFileInfo supplies a precomputed stat result to NewFile, skipping
// the stat at resolve time. Ignored by the in-memory constructors.
func WithFileInfo(info fs.FileInfo) Option {
	return func(r *Response) { r.fileInfo = info }
}
