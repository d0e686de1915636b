package repositories

import (
	"context"

	"palu-board.backend/internal/domain/entities"
)

// LikeRepository defines like ledger data operations. Rows carry no
// uniqueness constraint on (token_address, user_ip); repeated likes from the
// same IP produce separate rows.
type LikeRepository interface {
	Add(ctx context.Context, tokenAddress, userIP string) (*entities.Like, error)
	// Remove deletes matching rows and returns how many went, or
	// ErrNotFound when nothing matched.
	Remove(ctx context.Context, tokenAddress, userIP string) (int64, error)
	CountByToken(ctx context.Context, tokenAddress string) (int64, error)
	HasUserLiked(ctx context.Context, tokenAddress, userIP string) (bool, error)
	// GetUserLikes returns the addresses liked by the given IP.
	GetUserLikes(ctx context.Context, userIP string) ([]string, error)
	// GetTopLikedTokens returns tokens ordered by like_count desc.
	GetTopLikedTokens(ctx context.Context, limit int) ([]*entities.Token, error)
}
