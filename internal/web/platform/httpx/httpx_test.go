package httpx

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestViewerIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithViewerID(context.Background(), "viewer-7")
	if got := ViewerIDFromContext(ctx); got != "viewer-7" {
		t.Fatalf("ViewerIDFromContext = %q, want %q", got, "viewer-7")
	}
}

func TestViewerIDAnonymous(t *testing.T) {
	t.Parallel()

	if got := ViewerIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected anonymous context to yield empty id, got %q", got)
	}
}

func TestRequestIDAssignsIdentifier(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}), RequestID())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request id in context")
	}
	if len(seen) != 26 {
		t.Fatalf("request id length = %d, want 26", len(seen))
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("response header = %q, want %q", rec.Header().Get(RequestIDHeader), seen)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}), RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "upstream-id" {
		t.Fatalf("request id = %q, want %q", seen, "upstream-id")
	}
}

func TestRecoverPanicWrites500(t *testing.T) {
	t.Parallel()

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RecoverPanic(log.New(io.Discard, "", 0)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
