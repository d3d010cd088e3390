package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/WindowGenerator/filestream/pkg/response"
	"github.com/WindowGenerator/filestream/pkg/transport"
)

// Adapter serves streaming responses over HTTP. It builds a frame writer
// per request, runs the handler through its middleware chain, tracks
// in-flight streams, and translates pre-start errors into clean JSON
// error responses.
type Adapter struct {
	handler  transport.Handler
	inflight *transport.InFlightRegistry
	logger   *slog.Logger
}

// NewAdapter creates an adapter around the given handler. Middleware is
// applied in the given order.
func NewAdapter(h transport.Handler, middlewares ...transport.Middleware) *Adapter {
	if len(middlewares) > 0 {
		h = transport.Chain(middlewares...)(h)
	}
	return &Adapter{
		handler:  h,
		inflight: transport.NewInFlightRegistry(),
		logger:   slog.Default(),
	}
}

// InFlight exposes the registry of streams currently being sent, for
// shutdown cancellation and gauges.
func (a *Adapter) InFlight() *transport.InFlightRegistry {
	return a.inflight
}

// ServeHTTP implements http.Handler.
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The request ID doubles as the in-flight registry key, so it is
	// fixed here rather than left to the RequestID middleware.
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	ctx := transport.ContextWithRequestID(r.Context(), id)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.inflight.Register(id, cancel)
	defer a.inflight.Remove(id)

	fw := newFrameWriter(w)
	req := &transport.Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header,
	}

	err := a.handler.ServeStream(ctx, req, fw)
	if err == nil {
		return
	}

	if fw.started() {
		// The start frame is on the wire; the client is left with an
		// incomplete stream. Nothing to roll back, only to record.
		a.logger.ErrorContext(ctx, "stream aborted after start frame",
			slog.String("request_id", id),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		return
	}

	transport.WriteError(w, errorForWire(err))
}

// errorForWire maps handler errors to the transport error taxonomy for
// clients. Content that is missing or not a regular file reads as 404;
// typed transport errors pass through; everything else is a server error.
func errorForWire(err error) *transport.Error {
	var terr *transport.Error
	switch {
	case errors.As(err, &terr):
		return terr
	case errors.Is(err, response.ErrNotExist):
		return transport.NewNotFoundError(err.Error())
	case errors.Is(err, response.ErrNotRegular):
		return transport.NewNotFoundError(err.Error())
	default:
		return transport.NewServerError(err.Error())
	}
}
