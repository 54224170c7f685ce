package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	os.Setenv("HTTP_ADDRESS", "")
	os.Setenv("CEREBRAS_MODEL_ID", "")
	os.Setenv("CEREBRAS_REPORT_MODEL_ID", "")
	os.Setenv("TTS_PROVIDER", "")
	os.Setenv("MAX_ANSWERS", "")
	os.Setenv("SESSION_TTL", "")
	cfg := Load()
	if cfg.HTTPAddress == "" {
		t.Fatalf("expected default http address")
	}
	if cfg.CerebrasModelID == "" || cfg.CerebrasReportModelID == "" {
		t.Fatalf("expected default model ids")
	}
	if cfg.TTSProvider != "elevenlabs" {
		t.Fatalf("expected default tts provider, got %q", cfg.TTSProvider)
	}
	if cfg.MaxAnswers != 3 {
		t.Fatalf("expected default max answers 3, got %d", cfg.MaxAnswers)
	}
	if cfg.SessionTTL != 0 {
		t.Fatalf("expected session expiry disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("MAX_ANSWERS", "5")
	os.Setenv("SESSION_TTL", "30m")
	os.Setenv("TTS_PROVIDER", "deepgram")
	defer func() {
		os.Unsetenv("MAX_ANSWERS")
		os.Unsetenv("SESSION_TTL")
		os.Unsetenv("TTS_PROVIDER")
	}()
	cfg := Load()
	if cfg.MaxAnswers != 5 {
		t.Fatalf("expected max answers 5, got %d", cfg.MaxAnswers)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.TTSProvider != "deepgram" {
		t.Fatalf("expected deepgram provider, got %q", cfg.TTSProvider)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Setenv("MAX_ANSWERS", "zero")
	os.Setenv("SESSION_TTL", "soon")
	os.Setenv("TTS_PROVIDER", "espeak")
	defer func() {
		os.Unsetenv("MAX_ANSWERS")
		os.Unsetenv("SESSION_TTL")
		os.Unsetenv("TTS_PROVIDER")
	}()
	cfg := Load()
	if cfg.MaxAnswers != 3 {
		t.Fatalf("expected fallback max answers 3, got %d", cfg.MaxAnswers)
	}
	if cfg.SessionTTL != 0 {
		t.Fatalf("expected fallback session ttl 0, got %v", cfg.SessionTTL)
	}
	if cfg.TTSProvider != "elevenlabs" {
		t.Fatalf("expected fallback provider elevenlabs, got %q", cfg.TTSProvider)
	}
}
