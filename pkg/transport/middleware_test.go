package transport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

// nopSender discards all frames.
type nopSender struct{}

func (nopSender) SendStart(ctx context.Context, status int, header http.Header) error { return nil }
func (nopSender) SendChunk(ctx context.Context, body []byte, more bool) error         { return nil }

func testRequest() *Request {
	return &Request{Method: http.MethodGet, Path: "/files/a.txt", Header: http.Header{}}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
				order = append(order, name+" in")
				err := next.ServeStream(ctx, req, s)
				order = append(order, name+" out")
				return err
			})
		}
	}

	h := Chain(mk("a"), mk("b"))(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		order = append(order, "handler")
		return nil
	}))

	if err := h.ServeStream(context.Background(), testRequest(), nopSender{}); err != nil {
		t.Fatalf("ServeStream error: %v", err)
	}

	want := []string{"a in", "b in", "handler", "b out", "a out"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	var seen string
	h := RequestID()(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		seen = RequestIDFromContext(ctx)
		return nil
	}))

	if err := h.ServeStream(context.Background(), testRequest(), nopSender{}); err != nil {
		t.Fatalf("ServeStream error: %v", err)
	}
	if seen == "" {
		t.Error("expected a generated request ID")
	}
}

func TestRequestIDPreservesExisting(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")

	var seen string
	h := RequestID()(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		seen = RequestIDFromContext(ctx)
		return nil
	}))

	if err := h.ServeStream(ctx, testRequest(), nopSender{}); err != nil {
		t.Fatalf("ServeStream error: %v", err)
	}
	if seen != "req-123" {
		t.Errorf("request ID = %q, want %q", seen, "req-123")
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	h := Recovery()(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		panic("boom")
	}))

	err := h.ServeStream(context.Background(), testRequest(), nopSender{})
	if err == nil {
		t.Fatal("expected an error from recovered panic")
	}
	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if terr.Kind != KindServerError {
		t.Errorf("kind = %q, want %q", terr.Kind, KindServerError)
	}
	if !strings.Contains(terr.Message, "boom") {
		t.Errorf("message %q should mention the panic value", terr.Message)
	}
}

func TestLoggingEmitsEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Logging(logger)(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		return nil
	}))
	if err := h.ServeStream(context.Background(), testRequest(), nopSender{}); err != nil {
		t.Fatalf("ServeStream error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "stream completed") {
		t.Errorf("log output missing completion entry:\n%s", out)
	}
	if !strings.Contains(out, "path=/files/a.txt") {
		t.Errorf("log output missing path:\n%s", out)
	}
}

func TestLoggingEmitsErrorEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Logging(logger)(HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
		return errors.New("stream broke")
	}))
	if err := h.ServeStream(context.Background(), testRequest(), nopSender{}); err == nil {
		t.Fatal("expected handler error to propagate")
	}

	out := buf.String()
	if !strings.Contains(out, "stream failed") || !strings.Contains(out, "stream broke") {
		t.Errorf("log output missing failure entry:\n%s", out)
	}
}
