// Package http adapts the filestream frame contract to net/http: it turns
// start and body frames into header writes and flushed body writes on an
// http.ResponseWriter, and exposes a Server with graceful shutdown.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/WindowGenerator/filestream/pkg/transport"
)

// writerState tracks the state of a frame writer.
type writerState int

const (
	writerIdle      writerState = iota // Initial state, no frames yet
	writerStreaming                    // SendStart has been called
	writerCompleted                    // Terminal body frame sent
)

// frameWriter implements transport.Sender (and transport.FileSender) over
// an http.ResponseWriter. Every body frame is flushed immediately so the
// client observes streaming rather than a buffered body.
type frameWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController

	mu    sync.Mutex
	state writerState
}

var _ transport.FileSender = (*frameWriter)(nil)

// newFrameWriter creates a frame writer wrapping an http.ResponseWriter.
func newFrameWriter(w http.ResponseWriter) *frameWriter {
	return &frameWriter{
		w:  w,
		rc: http.NewResponseController(w),
	}
}

// SendStart writes the headers and status code. The request ID, when
// present in the context, is surfaced as X-Request-ID.
func (f *frameWriter) SendStart(ctx context.Context, status int, header http.Header) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != writerIdle {
		return errors.New("cannot send start frame: stream already started")
	}

	dst := f.w.Header()
	for k, vv := range header {
		dst[k] = vv
	}
	if id := transport.RequestIDFromContext(ctx); id != "" && dst.Get("X-Request-ID") == "" {
		dst.Set("X-Request-ID", id)
	}

	f.w.WriteHeader(status)
	f.state = writerStreaming
	return nil
}

// SendChunk writes one body frame and flushes it. The frame with
// more=false completes the stream; any frame after that is an error.
func (f *frameWriter) SendChunk(ctx context.Context, body []byte, more bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case writerIdle:
		return errors.New("cannot send body frame before start frame")
	case writerCompleted:
		return errors.New("cannot send body frame: stream is completed")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(body) > 0 {
		if _, err := f.w.Write(body); err != nil {
			return fmt.Errorf("writing body frame: %w", err)
		}
	}
	if err := f.rc.Flush(); err != nil {
		return fmt.Errorf("flushing body frame: %w", err)
	}

	if !more {
		f.state = writerCompleted
	}
	return nil
}

// SendFile streams the whole file at path as the body, completing the
// stream. net/http copies from an *os.File with sendfile where the
// platform supports it.
func (f *frameWriter) SendFile(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case writerIdle:
		return errors.New("cannot send file before start frame")
	case writerCompleted:
		return errors.New("cannot send file: stream is completed")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(f.w, file); err != nil {
		return fmt.Errorf("sending file %q: %w", path, err)
	}
	if err := f.rc.Flush(); err != nil {
		return fmt.Errorf("flushing file body: %w", err)
	}

	f.state = writerCompleted
	return nil
}

// started reports whether the start frame has been written, i.e. whether
// an error can still be turned into a clean error response.
func (f *frameWriter) started() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state != writerIdle
}
