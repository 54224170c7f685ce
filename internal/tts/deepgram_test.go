package tts

import (
	"context"
	"testing"
	"time"
)

// Smoke test: Synthesize without an API key must fail fast.
func TestDeepgram_NoKey(t *testing.T) {
	d := NewDeepgramClient("", "")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if _, err := d.Synthesize(ctx, "hello"); err == nil {
		t.Fatalf("expected error when api key missing")
	}
}

func TestDeepgram_DefaultModel(t *testing.T) {
	d := NewDeepgramClient("key", "")
	if d.model != "aura-2-thalia-en" {
		t.Fatalf("expected default model, got %q", d.model)
	}
}

func TestDeepgram_EmptyTextIsNoop(t *testing.T) {
	d := NewDeepgramClient("key", "")
	audio, err := d.Synthesize(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audio != nil {
		t.Fatalf("expected nil audio for empty text")
	}
}
