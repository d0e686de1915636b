package repositories

import (
	"context"

	"palu-board.backend/internal/domain/entities"
)

// TokenRepository defines token registry data operations
type TokenRepository interface {
	// Create inserts a token idempotently. When the address already exists
	// the call is a no-op and returns (nil, nil).
	Create(ctx context.Context, address string) (*entities.Token, error)
	// GetAll returns every token ordered by like_count desc, created_at desc.
	GetAll(ctx context.Context) ([]*entities.Token, error)
	FindByAddress(ctx context.Context, address string) (*entities.Token, error)
	// Delete removes the row and returns it, or ErrNotFound.
	Delete(ctx context.Context, address string) (*entities.Token, error)
	// IncrementLikeCount adjusts the denormalized counter by delta.
	IncrementLikeCount(ctx context.Context, address string, delta int) error
}
