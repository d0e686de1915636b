package repositories

import (
	"context"

	"palu-board.backend/internal/domain/entities"
)

// ChatMessageRepository defines chat log data operations
type ChatMessageRepository interface {
	// Create persists the message and fills in its ID and timestamp.
	Create(ctx context.Context, msg *entities.ChatMessage) error
	// GetRecent returns the newest limit messages, ordered oldest first.
	GetRecent(ctx context.Context, limit int) ([]*entities.ChatMessage, error)
	Count(ctx context.Context) (int64, error)
	// PruneToRecent deletes everything but the newest keep rows and
	// reports how many rows were removed.
	PruneToRecent(ctx context.Context, keep int) (int64, error)
}
