package interview

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the process-wide session map. Lifecycle is tied to process uptime;
// nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session seeded with the interviewer's greeting and
// returns it. The id is freshly generated and is the sole lookup key.
func (st *Store) Create(role, greeting string) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Role:       role,
		History:    []Turn{{Speaker: SpeakerInterviewer, Content: greeting}},
		lastActive: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for id, or nil if it never existed or was already
// terminated.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes the session. A deleted id behaves as unknown forever after.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartSweeper periodically evicts sessions idle longer than ttl. A zero ttl
// disables expiry entirely (abandoned sessions then live until process exit).
func (st *Store) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.sweep(ttl)
			}
		}
	}()
}

func (st *Store) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	// Snapshot first so the store lock is never held while taking a session
	// lock; operations take them in the opposite order.
	st.mu.RLock()
	snapshot := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		snapshot = append(snapshot, s)
	}
	st.mu.RUnlock()

	for _, s := range snapshot {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			st.mu.Lock()
			delete(st.sessions, s.ID)
			st.mu.Unlock()
			log.Printf("store: expired idle session %s", s.ID)
		}
	}
}
