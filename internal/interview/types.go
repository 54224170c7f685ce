package interview

import (
	"context"
	"sync"
	"time"
)

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerInterviewer Speaker = "interviewer"
	SpeakerCandidate   Speaker = "candidate"
)

// Turn is one utterance in a session's transcript. Turns are append-only and
// never edited once recorded.
type Turn struct {
	Speaker Speaker
	Content string
}

// Session is one candidate's in-progress interview. History always starts
// with the interviewer's greeting before any candidate turn exists.
//
// The mutex serializes operations addressing the same session id; the store
// map itself is guarded separately.
type Session struct {
	ID      string
	Role    string
	History []Turn

	mu         sync.Mutex
	lastActive time.Time
}

// CandidateTurns counts candidate-authored turns only; the interviewer's
// greeting and questions never count toward the answer limit.
func (s *Session) CandidateTurns() int {
	n := 0
	for _, t := range s.History {
		if t.Speaker == SpeakerCandidate {
			n++
		}
	}
	return n
}

// Message is a chat-model message with an OpenAI-style role.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcriber converts recorded audio bytes to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer converts text to playable audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	// ContentType reports the MIME type of the audio Synthesize produces.
	ContentType() string
}

// ChatModel produces a single completion for a message sequence.
type ChatModel interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Archiver stores a copy of candidate answer audio. Uploads are best-effort;
// failures never affect the interview.
type Archiver interface {
	Upload(objectKey string, contentType string, body []byte) error
}

// Outcome is the discriminated result of SubmitAnswer: either the next
// question's audio (interview continues) or the final report text (interview
// over, session gone).
type Outcome struct {
	Finished bool

	// Audio and AudioContentType are set when Finished is false.
	Audio            []byte
	AudioContentType string

	// Report is set when Finished is true.
	Report string
}
