package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	HTTPAddress string

	GroqKey          string
	GroqWhisperModel string

	CerebrasKey           string
	CerebrasModelID       string
	CerebrasReportModelID string

	TTSProvider       string
	ElevenLabsKey     string
	ElevenLabsVoiceID string
	DeepgramKey       string
	DeepgramTTSModel  string

	MaxAnswers int
	SessionTTL time.Duration

	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
}

// Load reads environment variables and returns Config with sane defaults.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}

	groqKey := os.Getenv("GROQ_API_KEY")
	if groqKey == "" {
		log.Println("Warning: GROQ_API_KEY not set - transcription will not work")
	}
	whisperModel := os.Getenv("GROQ_WHISPER_MODEL")
	if whisperModel == "" {
		whisperModel = "whisper-large-v3"
	}

	cerebrasKey := os.Getenv("CEREBRAS_API_KEY")
	if cerebrasKey == "" {
		log.Println("Warning: CEREBRAS_API_KEY not set - LLM will not work")
	}
	cerebrasModel := os.Getenv("CEREBRAS_MODEL_ID")
	if cerebrasModel == "" {
		cerebrasModel = "llama3.1-8b"
	}
	reportModel := os.Getenv("CEREBRAS_REPORT_MODEL_ID")
	if reportModel == "" {
		reportModel = "llama-3.3-70b"
	}

	ttsProvider := os.Getenv("TTS_PROVIDER")
	if ttsProvider == "" {
		ttsProvider = "elevenlabs"
	}
	elevenKey := os.Getenv("ELEVENLABS_API_KEY")
	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	deepgramKey := os.Getenv("DEEPGRAM_API_KEY")
	deepgramModel := os.Getenv("DEEPGRAM_TTS_MODEL")
	switch ttsProvider {
	case "elevenlabs":
		if elevenKey == "" || voiceID == "" {
			log.Println("Warning: ELEVENLABS_API_KEY or ELEVENLABS_VOICE_ID not set - TTS will not work")
		}
	case "deepgram":
		if deepgramKey == "" {
			log.Println("Warning: DEEPGRAM_API_KEY not set - TTS will not work")
		}
	default:
		log.Printf("Warning: unknown TTS_PROVIDER %q - falling back to elevenlabs", ttsProvider)
		ttsProvider = "elevenlabs"
	}

	maxAnswers := 3
	if v := os.Getenv("MAX_ANSWERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Printf("Warning: invalid MAX_ANSWERS %q - using default %d", v, maxAnswers)
		} else {
			maxAnswers = n
		}
	}

	var sessionTTL time.Duration
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			log.Printf("Warning: invalid SESSION_TTL %q - session expiry disabled", v)
		} else {
			sessionTTL = d
		}
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	supabaseBucket := os.Getenv("SUPABASE_ANSWERS_BUCKET")
	if supabaseBucket == "" {
		supabaseBucket = "interview-answers"
	}

	log.Printf("config: HTTP_ADDRESS=%s TTS_PROVIDER=%s MAX_ANSWERS=%d", addr, ttsProvider, maxAnswers)
	return Config{
		HTTPAddress:           addr,
		GroqKey:               groqKey,
		GroqWhisperModel:      whisperModel,
		CerebrasKey:           cerebrasKey,
		CerebrasModelID:       cerebrasModel,
		CerebrasReportModelID: reportModel,
		TTSProvider:           ttsProvider,
		ElevenLabsKey:         elevenKey,
		ElevenLabsVoiceID:     voiceID,
		DeepgramKey:           deepgramKey,
		DeepgramTTSModel:      deepgramModel,
		MaxAnswers:            maxAnswers,
		SessionTTL:            sessionTTL,
		SupabaseURL:           supabaseURL,
		SupabaseKey:           supabaseKey,
		SupabaseBucket:        supabaseBucket,
	}
}
