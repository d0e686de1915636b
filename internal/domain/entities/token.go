package entities

import "time"

// Token represents a tracked meme-token contract address with its like
// counter. Addresses are stored exactly as supplied by the client; no
// checksum or case canonicalization is applied.
type Token struct {
	Address   string    `json:"address"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}
