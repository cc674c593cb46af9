package model

import "time"

// SessionState is the per-visitor state the assistant keeps between
// requests: the anti-forgery token and the preferred answer language.
// It lives only in the session store; nothing is persisted.
type SessionState struct {
	SessionID string
	CSRFToken string
	Language  string
	CreatedAt time.Time
	LastSeen  time.Time
}
