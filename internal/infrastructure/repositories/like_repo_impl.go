package repositories

import (
	"context"

	"gorm.io/gorm"
	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/domain/repositories"
	"palu-board.backend/internal/infrastructure/models"
)

// likeRepo implements repositories.LikeRepository
type likeRepo struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &likeRepo{db: db}
}

// Add inserts a like row unconditionally and returns it
func (r *likeRepo) Add(ctx context.Context, tokenAddress, userIP string) (*entities.Like, error) {
	m := &models.Like{
		TokenAddress: tokenAddress,
		UserIP:       userIP,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// Remove deletes every row for (token_address, user_ip) and reports how many
// went, so callers can keep the denormalized counter in step.
func (r *likeRepo) Remove(ctx context.Context, tokenAddress, userIP string) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("token_address = ? AND user_ip = ?", tokenAddress, userIP).
		Delete(&models.Like{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrNotFound
	}
	return result.RowsAffected, nil
}

// CountByToken counts like rows for an address
func (r *likeRepo) CountByToken(ctx context.Context, tokenAddress string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("token_address = ?", tokenAddress).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLiked reports whether the IP has at least one like row for the address
func (r *likeRepo) HasUserLiked(ctx context.Context, tokenAddress, userIP string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("token_address = ? AND user_ip = ?", tokenAddress, userIP).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserLikes lists the addresses liked by an IP
func (r *likeRepo) GetUserLikes(ctx context.Context, userIP string) ([]string, error) {
	var addresses []string
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_ip = ?", userIP).
		Pluck("token_address", &addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetTopLikedTokens returns tokens ordered by like_count desc
func (r *likeRepo) GetTopLikedTokens(ctx context.Context, limit int) ([]*entities.Token, error) {
	var ms []models.Token
	query := GetDB(ctx, r.db).WithContext(ctx).Order("like_count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	tokens := make([]*entities.Token, 0, len(ms))
	for _, m := range ms {
		tokens = append(tokens, &entities.Token{
			Address:   m.Address,
			LikeCount: m.LikeCount,
			CreatedAt: m.CreatedAt,
		})
	}
	return tokens, nil
}

// toEntity converts GORM model to Domain Entity
func (r *likeRepo) toEntity(m *models.Like) *entities.Like {
	return &entities.Like{
		ID:           m.ID,
		TokenAddress: m.TokenAddress,
		UserIP:       m.UserIP,
		CreatedAt:    m.CreatedAt,
	}
}
