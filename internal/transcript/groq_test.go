package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGroq_NoKey(t *testing.T) {
	c := NewGroqClient("", "")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.Transcribe(ctx, []byte("audio")); err == nil {
		t.Fatalf("expected error with missing key")
	}
}

func TestGroq_DefaultModel(t *testing.T) {
	c := NewGroqClient("key", "")
	if c.Model != "whisper-large-v3" {
		t.Fatalf("expected default model, got %q", c.Model)
	}
}

func TestGroq_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Errorf("unexpected model field %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file field: %v", err)
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"text":"  hello world  "}`))
	}))
	defer srv.Close()

	c := NewGroqClient("key", "")
	c.HTTPClient = rewiredClient(srv)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := c.Transcribe(ctx, []byte("audio-bytes"))
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected trimmed transcript, got %q", got)
	}
}

func TestGroq_HTTPFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status_non_2xx", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(429); _, _ = w.Write([]byte("rate limited")) }},
		{"bad_json", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("not-json")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			c := NewGroqClient("key", "")
			c.HTTPClient = rewiredClient(srv)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if _, err := c.Transcribe(ctx, []byte("audio")); err == nil {
				t.Fatalf("expected error; got nil")
			}
		})
	}
}

func rewiredClient(srv *httptest.Server) *http.Client {
	return &http.Client{Timeout: 1 * time.Second, Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "http"
		req.URL.Host = srv.Listener.Addr().String()
		return http.DefaultTransport.RoundTrip(req)
	})}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
