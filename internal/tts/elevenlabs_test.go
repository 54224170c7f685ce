package tts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestElevenLabs_MissingCredentials(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		voice string
	}{
		{"no_key", "", "voice"},
		{"no_voice", "key", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewElevenLabsClient(tc.key, tc.voice)
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			if _, err := c.Synthesize(ctx, "hello"); err == nil {
				t.Fatalf("expected error with missing credentials")
			}
		})
	}
}

func TestElevenLabs_EmptyTextIsNoop(t *testing.T) {
	c := NewElevenLabsClient("key", "voice")
	audio, err := c.Synthesize(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audio != nil {
		t.Fatalf("expected nil audio for empty text")
	}
}

func TestElevenLabs_Success(t *testing.T) {
	want := []byte("mp3-payload")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("xi-api-key"); got != "key" {
			t.Errorf("unexpected api key header %q", got)
		}
		w.WriteHeader(200)
		_, _ = w.Write(want)
	}))
	defer srv.Close()

	c := NewElevenLabsClient("key", "voice")
	c.HTTPClient = rewiredClient(srv)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := c.Synthesize(ctx, "hello")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("audio mismatch: got %q want %q", got, want)
	}
	if c.ContentType() != "audio/mpeg" {
		t.Fatalf("expected audio/mpeg content type")
	}
}

func TestElevenLabs_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		_, _ = w.Write([]byte("unauthorized"))
	}))
	defer srv.Close()

	c := NewElevenLabsClient("key", "voice")
	c.HTTPClient = rewiredClient(srv)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := c.Synthesize(ctx, "hello"); err == nil {
		t.Fatalf("expected error on non-2xx status")
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
