package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/domain/repositories"
	"palu-board.backend/internal/infrastructure/models"
)

// tokenRepo implements repositories.TokenRepository
type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) repositories.TokenRepository {
	return &tokenRepo{db: db}
}

// Create inserts a token idempotently (ON CONFLICT DO NOTHING). Returns the
// inserted row, or (nil, nil) when the address was already registered.
func (r *tokenRepo) Create(ctx context.Context, address string) (*entities.Token, error) {
	m := &models.Token{Address: address}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.toEntity(m), nil
}

// GetAll returns all tokens ordered by like_count desc, then newest first for
// equal counts.
func (r *tokenRepo) GetAll(ctx context.Context) ([]*entities.Token, error) {
	var ms []models.Token
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("like_count DESC").Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	tokens := make([]*entities.Token, 0, len(ms))
	for _, m := range ms {
		model := m
		tokens = append(tokens, r.toEntity(&model))
	}
	return tokens, nil
}

// FindByAddress gets a single token by address
func (r *tokenRepo) FindByAddress(ctx context.Context, address string) (*entities.Token, error) {
	var m models.Token
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Delete removes a token and returns the removed row
func (r *tokenRepo) Delete(ctx context.Context, address string) (*entities.Token, error) {
	db := GetDB(ctx, r.db)

	var m models.Token
	if err := db.WithContext(ctx).First(&m, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	if err := db.WithContext(ctx).Delete(&models.Token{}, "address = ?", address).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

// IncrementLikeCount adjusts the denormalized counter by delta
func (r *tokenRepo) IncrementLikeCount(ctx context.Context, address string, delta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Token{}).
		Where("address = ?", address).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// toEntity converts GORM model to Domain Entity
func (r *tokenRepo) toEntity(m *models.Token) *entities.Token {
	return &entities.Token{
		Address:   m.Address,
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
	}
}
