package service

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hoctap_backend/internals/constants"
	"hoctap_backend/internals/features/chatbot/model"
)

const csrfTokenBytes = 32

// SessionStore keeps assistant sessions in memory, keyed by the value
// of the chat_session cookie. Entries expire after TTL of inactivity
// and are removed by the sweeper goroutine.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.SessionState
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{
		sessions: make(map[string]*model.SessionState),
		ttl:      ttl,
	}
}

// NewCSRFToken returns 32 random bytes as a 64-char hex string.
func NewCSRFToken() string {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no usable entropy
		// source; nothing sensible can continue.
		panic("session: cannot read random source: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// TokenPrefix is what goes into logs; never log a full token.
func TokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}

// Create registers a fresh session with a new token and the platform
// default language.
func (s *SessionStore) Create() *model.SessionState {
	now := time.Now()
	state := &model.SessionState{
		SessionID: uuid.New().String(),
		CSRFToken: NewCSRFToken(),
		Language:  constants.DefaultLanguage,
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[state.SessionID] = state
	s.mu.Unlock()

	log.Printf("[SESSION] created id=%s token=%s...", state.SessionID, TokenPrefix(state.CSRFToken))
	return state
}

// Get returns the live session for id, refreshing its idle timer.
// Expired entries are treated as absent.
func (s *SessionStore) Get(id string) (*model.SessionState, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(state.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	state.LastSeen = time.Now()
	return state, true
}

// RotateToken replaces the session's CSRF token. Used on the dev-mode
// mismatch path so the next call from the page can succeed.
func (s *SessionStore) RotateToken(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return "", false
	}
	state.CSRFToken = NewCSRFToken()
	log.Printf("[SESSION] rotated token id=%s token=%s...", id, TokenPrefix(state.CSRFToken))
	return state.CSRFToken, true
}

// SetLanguage stores the preferred language for the session.
func (s *SessionStore) SetLanguage(id, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return false
	}
	state.Language = code
	return true
}

// Len reports live session count (for the health route and tests).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle past TTL and returns how many were removed.
func (s *SessionStore) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, state := range s.sessions {
		if state.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanupScheduler sweeps expired sessions on an interval.
func (s *SessionStore) StartCleanupScheduler(interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		for {
			time.Sleep(interval)
			if n := s.Sweep(); n > 0 {
				log.Printf("[CLEANUP] removed %d expired chat sessions", n)
			}
		}
	}()
}
