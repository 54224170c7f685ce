package interview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrUnknownSession is returned when an operation addresses a session id that
// never existed or was already terminated.
var ErrUnknownSession = errors.New("unknown session")

// transcriptionFailedText is appended in place of the candidate's answer when
// transcription fails. The interview continues with degraded input rather
// than aborting.
const transcriptionFailedText = "[Transcription Failed]"

// Engine is the interview state machine. It owns session lifecycle from
// greeting to termination and drives the three collaborators.
type Engine struct {
	store      *Store
	stt        Transcriber
	tts        Synthesizer
	chat       ChatModel
	reports    *ReportGenerator
	archive    Archiver // optional
	maxAnswers int
}

func NewEngine(store *Store, stt Transcriber, tts Synthesizer, chat ChatModel, reports *ReportGenerator, maxAnswers int) *Engine {
	if maxAnswers <= 0 {
		maxAnswers = 3
	}
	return &Engine{
		store:      store,
		stt:        stt,
		tts:        tts,
		chat:       chat,
		reports:    reports,
		maxAnswers: maxAnswers,
	}
}

// WithArchiver enables best-effort archival of candidate answer audio.
func (e *Engine) WithArchiver(a Archiver) *Engine {
	e.archive = a
	return e
}

// Start creates a session for the given role and returns its id plus the
// synthesized greeting. The role string is passed through verbatim. The
// session is only registered once synthesis succeeds, so a failed start
// leaves nothing behind.
func (e *Engine) Start(ctx context.Context, role string) (string, []byte, string, error) {
	greeting := greetingText(role)
	audio, err := e.tts.Synthesize(ctx, greeting)
	if err != nil {
		return "", nil, "", fmt.Errorf("start: synthesize greeting: %w", err)
	}
	s := e.store.Create(role, greeting)
	log.Printf("interview: started session %s role=%q", s.ID, role)
	return s.ID, audio, e.tts.ContentType(), nil
}

// SubmitAnswer processes one recorded candidate answer. It returns either
// the next question's audio (non-terminal) or the final report (terminal,
// after which the session id behaves as unknown).
//
// The session mutex is held for the whole operation: concurrent submissions
// for the same id serialize rather than racing on history or termination.
func (e *Engine) SubmitAnswer(ctx context.Context, id string, audio []byte) (Outcome, error) {
	s := e.store.Get(id)
	if s == nil {
		return Outcome{}, ErrUnknownSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// The sweeper may have evicted the session while we waited for the lock.
	if e.store.Get(id) != s {
		return Outcome{}, ErrUnknownSession
	}
	s.lastActive = time.Now()

	text, err := e.stt.Transcribe(ctx, audio)
	if err != nil {
		log.Printf("interview: transcription failed for session %s: %v", id, err)
		text = transcriptionFailedText
	}
	s.History = append(s.History, Turn{Speaker: SpeakerCandidate, Content: text})
	answerNum := s.CandidateTurns()

	if e.archive != nil {
		key := fmt.Sprintf("answers/%s/%02d_%d", s.ID, answerNum, time.Now().Unix())
		payload := make([]byte, len(audio))
		copy(payload, audio)
		go func() {
			if err := e.archive.Upload(key, "application/octet-stream", payload); err != nil {
				log.Printf("interview: answer archive upload failed: %v", err)
			}
		}()
	}

	if answerNum >= e.maxAnswers {
		log.Printf("interview: session %s reached %d answers, generating report", id, answerNum)
		report, err := e.reports.Generate(ctx, s.Role, s.History)
		if err != nil {
			// The candidate turn stays appended; a retried submission will
			// append a duplicate. There is no operation-id deduplication.
			return Outcome{}, err
		}
		e.store.Delete(id)
		return Outcome{Finished: true, Report: report}, nil
	}

	question, err := e.chat.Complete(ctx, e.buildMessages(s))
	if err != nil {
		return Outcome{}, fmt.Errorf("next question: %w", err)
	}
	question = strings.TrimSpace(question)
	s.History = append(s.History, Turn{Speaker: SpeakerInterviewer, Content: question})

	questionAudio, err := e.tts.Synthesize(ctx, question)
	if err != nil {
		// History has already advanced past what the caller will see.
		return Outcome{}, fmt.Errorf("synthesize question: %w", err)
	}
	return Outcome{Audio: questionAudio, AudioContentType: e.tts.ContentType()}, nil
}

// buildMessages maps the session history onto chat-model messages with the
// role-specific system instruction prepended. Interviewer turns become
// assistant messages, candidate turns user messages.
func (e *Engine) buildMessages(s *Session) []Message {
	msgs := make([]Message, 0, len(s.History)+1)
	msgs = append(msgs, Message{Role: "system", Content: systemPrompt(s.Role)})
	for _, t := range s.History {
		role := "assistant"
		if t.Speaker == SpeakerCandidate {
			role = "user"
		}
		msgs = append(msgs, Message{Role: role, Content: t.Content})
	}
	return msgs
}
