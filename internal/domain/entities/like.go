package entities

import "time"

// Like ties a token address to a best-effort client identifier. The user IP
// is derived from forwarding headers and is trivially spoofable; it is a
// bookkeeping key, not a security boundary.
type Like struct {
	ID           uint      `json:"id"`
	TokenAddress string    `json:"token_address"`
	UserIP       string    `json:"user_ip"`
	CreatedAt    time.Time `json:"created_at"`
}
