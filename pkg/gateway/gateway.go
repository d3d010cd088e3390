// Package gateway implements the filestream gateway handler: it maps
// request paths onto a served directory tree and streams the files back
// through the response kit.
package gateway

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/WindowGenerator/filestream/pkg/response"
	"github.com/WindowGenerator/filestream/pkg/transport"
)

// Prefix is the URL prefix under which files are served.
const Prefix = "/files/"

// DirHandler serves a directory tree. Request paths are resolved beneath
// Root; anything escaping the root is rejected before touching the
// filesystem.
type DirHandler struct {
	Root        string // directory to serve, required
	ChunkSize   int    // body-frame threshold; 0 means response.DefaultChunkSize
	Disposition string // response.DispositionAttachment when empty
}

var _ transport.Handler = (*DirHandler)(nil)

// ServeStream implements transport.Handler.
func (h *DirHandler) ServeStream(ctx context.Context, req *transport.Request, s transport.Sender) error {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return transport.NewInvalidRequestError("only GET and HEAD are supported")
	}

	rel, ok := strings.CutPrefix(req.Path, Prefix)
	if !ok || rel == "" {
		return transport.NewNotFoundError("no such route")
	}

	clean := path.Clean("/" + rel) // forces the path under "/", killing ".." escapes
	if clean == "/" {
		return transport.NewInvalidRequestError("a file path is required")
	}
	full := path.Join(h.Root, clean)

	opts := []response.Option{
		response.WithFilename(path.Base(clean)),
	}
	if h.ChunkSize > 0 {
		opts = append(opts, response.WithChunkSize(h.ChunkSize))
	}
	if h.Disposition != "" {
		opts = append(opts, response.WithDisposition(h.Disposition))
	}

	return response.Send(ctx, response.NewFile(full, opts...), req, s)
}
