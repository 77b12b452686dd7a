package models

import "time"

// ChatExchange is one assistant round trip. It lives in the session store
// with a TTL and is never written to SQL.
type ChatExchange struct {
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}
