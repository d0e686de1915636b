package repositories

import (
	"context"

	"gorm.io/gorm"
	"palu-board.backend/internal/domain/entities"
	"palu-board.backend/internal/domain/repositories"
	"palu-board.backend/internal/infrastructure/models"
)

// chatMessageRepo implements repositories.ChatMessageRepository
type chatMessageRepo struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) repositories.ChatMessageRepository {
	return &chatMessageRepo{db: db}
}

// Create persists a chat message and fills in its ID and timestamp
func (r *chatMessageRepo) Create(ctx context.Context, msg *entities.ChatMessage) error {
	m := &models.ChatMessage{
		Username: msg.Username,
		Message:  msg.Message,
		UserIP:   msg.UserIP,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

// GetRecent returns the newest limit messages ordered oldest first, so a
// client can render the backlog top to bottom.
func (r *chatMessageRepo) GetRecent(ctx context.Context, limit int) ([]*entities.ChatMessage, error) {
	var ms []models.ChatMessage
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	// Reverse: the query fetched newest-first.
	msgs := make([]*entities.ChatMessage, len(ms))
	for i, m := range ms {
		model := m
		msgs[len(ms)-1-i] = r.toEntity(&model)
	}
	return msgs, nil
}

// Count returns the chat log size
func (r *chatMessageRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ChatMessage{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PruneToRecent deletes everything but the newest keep rows
func (r *chatMessageRepo) PruneToRecent(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.WithContext(ctx).Model(&models.ChatMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	excess := count - int64(keep)
	if excess <= 0 {
		return 0, nil
	}

	var ids []uint
	if err := db.WithContext(ctx).
		Model(&models.ChatMessage{}).
		Order("created_at ASC").Order("id ASC").
		Limit(int(excess)).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	result := db.WithContext(ctx).Delete(&models.ChatMessage{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// toEntity converts GORM model to Domain Entity
func (r *chatMessageRepo) toEntity(m *models.ChatMessage) *entities.ChatMessage {
	return &entities.ChatMessage{
		ID:        m.ID,
		Username:  m.Username,
		Message:   m.Message,
		UserIP:    m.UserIP,
		CreatedAt: m.CreatedAt,
	}
}
