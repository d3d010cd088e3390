package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/WindowGenerator/filestream/pkg/transport"
)

func TestSendStartWritesHeadersAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	fw := newFrameWriter(rec)

	header := http.Header{}
	header.Set("Content-Type", "image/png")
	header.Set("Content-Length", "4")

	if err := fw.SendStart(context.Background(), http.StatusOK, header); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}
	if err := fw.SendChunk(context.Background(), []byte("1234"), false); err != nil {
		t.Fatalf("SendChunk error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if got := rec.Body.String(); got != "1234" {
		t.Errorf("body = %q, want %q", got, "1234")
	}
}

func TestSendStartSurfacesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	fw := newFrameWriter(rec)

	ctx := transport.ContextWithRequestID(context.Background(), "req-42")
	if err := fw.SendStart(ctx, http.StatusOK, http.Header{}); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}

	if id := rec.Header().Get("X-Request-ID"); id != "req-42" {
		t.Errorf("X-Request-ID = %q, want req-42", id)
	}
}

func TestSendStartTwiceFails(t *testing.T) {
	fw := newFrameWriter(httptest.NewRecorder())

	if err := fw.SendStart(context.Background(), http.StatusOK, http.Header{}); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}
	if err := fw.SendStart(context.Background(), http.StatusOK, http.Header{}); err == nil {
		t.Error("second SendStart must fail")
	}
}

func TestSendChunkBeforeStartFails(t *testing.T) {
	fw := newFrameWriter(httptest.NewRecorder())
	if err := fw.SendChunk(context.Background(), []byte("x"), true); err == nil {
		t.Error("SendChunk before SendStart must fail")
	}
}

func TestSendChunkAfterTerminalFails(t *testing.T) {
	fw := newFrameWriter(httptest.NewRecorder())

	ctx := context.Background()
	if err := fw.SendStart(ctx, http.StatusOK, http.Header{}); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}
	if err := fw.SendChunk(ctx, []byte("last"), false); err != nil {
		t.Fatalf("terminal SendChunk error: %v", err)
	}
	if err := fw.SendChunk(ctx, []byte("extra"), false); err == nil {
		t.Error("SendChunk after the terminal frame must fail")
	}
}

func TestSendChunksAccumulateInOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	fw := newFrameWriter(rec)

	ctx := context.Background()
	if err := fw.SendStart(ctx, http.StatusOK, http.Header{}); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}
	for _, part := range []string{"alpha ", "beta ", "gamma"} {
		if err := fw.SendChunk(ctx, []byte(part), part != "gamma"); err != nil {
			t.Fatalf("SendChunk(%q) error: %v", part, err)
		}
	}

	if got := rec.Body.String(); got != "alpha beta gamma" {
		t.Errorf("body = %q, want %q", got, "alpha beta gamma")
	}
}

func TestSendFileStreamsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whole.bin")
	if err := os.WriteFile(path, []byte("entire file body"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	fw := newFrameWriter(rec)

	ctx := context.Background()
	if err := fw.SendStart(ctx, http.StatusOK, http.Header{}); err != nil {
		t.Fatalf("SendStart error: %v", err)
	}
	if err := fw.SendFile(ctx, path); err != nil {
		t.Fatalf("SendFile error: %v", err)
	}

	if got := rec.Body.String(); got != "entire file body" {
		t.Errorf("body = %q, want file content", got)
	}
	if err := fw.SendChunk(ctx, []byte("x"), false); err == nil {
		t.Error("SendChunk after SendFile must fail")
	}
}
