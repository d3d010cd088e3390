package response

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/WindowGenerator/filestream/pkg/transport"
)

// DefaultChunkSize is the maximum body-frame payload size. The final
// chunk of a body is recognized by being shorter than this threshold; a
// body whose length is an exact multiple is terminated with an explicit
// empty frame.
const DefaultChunkSize = 64 * 1024

// Content-disposition modes.
const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// Source produces the body bytes for a Response. It is the one required
// capability a content variant supplies; pre- and post-send hooks are
// optional (see Completer).
type Source interface {
	// Resolve is the pre-send hook. It validates the source and derives
	// the missing size/modification metadata into the response headers.
	// It runs before the start frame; a failure here means nothing has
	// been sent to the client yet.
	Resolve(ctx context.Context, r *Response) error

	// Open returns the body content for streaming. The send loop closes
	// the reader on all exit paths, including errors and cancellation.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Completer is implemented by sources that need to run logic after the
// body has been fully sent, before the background task fires.
type Completer interface {
	Complete(ctx context.Context) error
}

// PathSource is implemented by sources whose content is a file on disk.
// When the Sender also implements transport.FileSender, the send loop
// delegates the whole body to one SendFile call instead of chunking.
type PathSource interface {
	ContentPath() string
}

// Response is the transient state of one streaming exchange. It is owned
// exclusively by the request-handling call and must not be reused across
// requests.
type Response struct {
	StatusCode  int
	Header      http.Header
	MediaType   string
	Filename    string
	Size        int64     // -1 when unknown until Resolve
	ModTime     time.Time // zero when unknown until Resolve
	Disposition string
	Background  BackgroundTask
	ChunkSize   int

	src      Source
	fileInfo fs.FileInfo // optional precomputed stat, file responses only
}

// newResponse builds the common response state shared by all content
// sources and applies the header-derivation rules: caller-supplied
// headers always win, the media type defaults from the filename
// extension, and a filename produces a content-disposition header.
func newResponse(src Source, filename string, opts ...Option) *Response {
	r := &Response{
		StatusCode:  http.StatusOK,
		Header:      make(http.Header),
		Filename:    filename,
		Size:        -1,
		Disposition: DispositionAttachment,
		ChunkSize:   DefaultChunkSize,
		src:         src,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.MediaType == "" && r.Filename != "" {
		mt := mediaTypeByExtension(r.Filename)
		if mt == "" {
			mt = "text/plain"
		}
		r.MediaType = mt
	}
	if r.MediaType != "" {
		setIfAbsent(r.Header, "Content-Type", r.MediaType)
	}
	if r.Filename != "" {
		r.setContentDisposition()
	}
	return r
}

// ServeStream sends the response over s. It makes *Response usable as a
// single-use transport.Handler.
func (r *Response) ServeStream(ctx context.Context, req *transport.Request, s transport.Sender) error {
	return Send(ctx, r, req, s)
}

// Send drives the full send lifecycle of r over s:
//
//  1. The source's Resolve hook validates the content and derives the
//     identity headers. A failure here aborts before any frame is sent.
//  2. The start frame carries the status code and the full header set.
//  3. For HEAD requests, exactly one empty terminal body frame follows and
//     no content is read. Otherwise the body is streamed as ordered chunks
//     of at most r.ChunkSize bytes; a chunk shorter than the threshold
//     terminates the stream, and a body that is an exact multiple of the
//     threshold is terminated with an explicit empty frame.
//  4. The source's Complete hook runs, if implemented.
//  5. The background task, if any, runs exactly once, last.
func Send(ctx context.Context, r *Response, req *transport.Request, s transport.Sender) error {
	if err := r.src.Resolve(ctx, r); err != nil {
		return err
	}

	if err := s.SendStart(ctx, r.StatusCode, r.Header); err != nil {
		return err
	}

	if req.Method == http.MethodHead {
		if err := s.SendChunk(ctx, nil, false); err != nil {
			return err
		}
	} else if err := r.sendBody(ctx, s); err != nil {
		return err
	}

	if c, ok := r.src.(Completer); ok {
		if err := c.Complete(ctx); err != nil {
			return err
		}
	}

	if r.Background != nil {
		return r.Background(ctx)
	}
	return nil
}

// sendBody streams the content through s, preferring a whole-file send
// when both sides support it.
func (r *Response) sendBody(ctx context.Context, s transport.Sender) error {
	if fsender, ok := s.(transport.FileSender); ok {
		if ps, ok := r.src.(PathSource); ok {
			return fsender.SendFile(ctx, ps.ContentPath())
		}
	}

	rc, err := r.src.Open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	size := r.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	buf := make([]byte, size)
	for {
		n, err := io.ReadFull(rc, buf)
		switch err {
		case nil:
			// Full chunk; at least one more frame follows.
			if err := s.SendChunk(ctx, buf[:n], true); err != nil {
				return err
			}
		case io.EOF, io.ErrUnexpectedEOF:
			// Short (possibly empty) tail terminates the stream.
			return s.SendChunk(ctx, buf[:n], false)
		default:
			return err
		}
	}
}
