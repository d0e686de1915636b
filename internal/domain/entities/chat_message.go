package entities

import "time"

const (
	// MaxUsernameLength bounds the chat display name.
	MaxUsernameLength = 20
	// MaxMessageLength bounds a single chat message.
	MaxMessageLength = 500
)

// ChatMessage is one persisted chat log entry. The sender IP is kept for
// moderation but never serialized back to chat clients.
type ChatMessage struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	UserIP    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
