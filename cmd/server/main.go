package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kunnanan/Assessli-verse/internal/config"
	"github.com/Kunnanan/Assessli-verse/internal/httpserver"
	"github.com/Kunnanan/Assessli-verse/internal/interview"
	"github.com/Kunnanan/Assessli-verse/internal/llm"
	"github.com/Kunnanan/Assessli-verse/internal/storage"
	"github.com/Kunnanan/Assessli-verse/internal/transcript"
	"github.com/Kunnanan/Assessli-verse/internal/tts"
)

func main() {
	// Include sub-second precision in all log timestamps
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg := config.Load()

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	store := interview.NewStore()
	store.StartSweeper(rootCtx, cfg.SessionTTL, time.Minute)

	var synth interview.Synthesizer
	if cfg.TTSProvider == "deepgram" {
		synth = tts.NewDeepgramClient(cfg.DeepgramKey, cfg.DeepgramTTSModel)
	} else {
		synth = tts.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
	}

	stt := transcript.NewGroqClient(cfg.GroqKey, cfg.GroqWhisperModel)
	chat := llm.NewCerebrasClient(cfg.CerebrasKey, cfg.CerebrasModelID, 0.7)
	reportModel := llm.NewCerebrasClient(cfg.CerebrasKey, cfg.CerebrasReportModelID, 0.5)
	reports := interview.NewReportGenerator(reportModel)

	engine := interview.NewEngine(store, stt, synth, chat, reports, cfg.MaxAnswers)
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		archive, err := storage.New(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
		if err != nil {
			log.Printf("answer archival disabled: %v", err)
		} else {
			engine.WithArchiver(archive)
			log.Printf("answer archival enabled: bucket=%s", cfg.SupabaseBucket)
		}
	}

	srv := httpserver.New(engine)

	server := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in background
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddress)
		serverErrors <- server.ListenAndServe()
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("shutdown signal received: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = server.Close()
	}
}
