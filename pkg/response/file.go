package response

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// NewFile builds a response that streams the file at path. The filename
// (and with it the content-disposition header) is optional and supplied
// via WithFilename; when neither a filename nor an explicit media type is
// given, the media type is guessed from the path extension and omitted
// when unguessable.
//
// A precomputed stat result can be supplied with WithFileInfo to skip the
// stat at resolve time.
func NewFile(path string, opts ...Option) *Response {
	src := &fileSource{path: path}
	r := newResponse(src, "", opts...)
	src.info = r.fileInfo

	if r.fileInfo != nil {
		if r.Size < 0 {
			r.Size = r.fileInfo.Size()
		}
		if r.ModTime.IsZero() {
			r.ModTime = r.fileInfo.ModTime()
		}
	}

	if r.MediaType == "" && r.Filename == "" {
		if mt := mediaTypeByExtension(path); mt != "" {
			r.MediaType = mt
			setIfAbsent(r.Header, "Content-Type", mt)
		}
	}
	return r
}

// fileSource streams a file from disk.
type fileSource struct {
	path string
	info fs.FileInfo // nil unless precomputed
}

var _ PathSource = (*fileSource)(nil)

// Resolve stats the path unless a precomputed result was supplied, rejects
// missing paths and non-regular files, and derives the identity headers
// from the observed size and modification time.
func (s *fileSource) Resolve(ctx context.Context, r *Response) error {
	info := s.info
	if info == nil {
		var err error
		info, err = os.Stat(s.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("file at path %q does not exist: %w", s.path, ErrNotExist)
			}
			return fmt.Errorf("stat %q: %w", s.path, err)
		}
		s.info = info
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("file at path %q is not a file: %w", s.path, ErrNotRegular)
	}

	r.Size = info.Size()
	r.ModTime = info.ModTime()
	r.setStatHeaders(info.Size(), info.ModTime())
	return nil
}

// Open opens the file for reading. The send loop closes it on all exit
// paths, including errors and cancellation.
func (s *fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

// ContentPath exposes the on-disk path for transports that support
// whole-file sends.
func (s *fileSource) ContentPath() string {
	return s.path
}
