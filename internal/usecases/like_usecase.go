package usecases

import (
	"context"

	"palu-board.backend/internal/config"
	"palu-board.backend/internal/domain/entities"
	"palu-board.backend/internal/domain/repositories"
)

// LikeResult is the response of a successful add-like operation
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// LikeStatus reports a token's like count and whether the requesting client
// has liked it.
type LikeStatus struct {
	LikeCount int64 `json:"likeCount"`
	HasLiked  bool  `json:"hasLiked"`
}

// LikeUsecase handles like ledger business logic
type LikeUsecase struct {
	tokenRepo    repositories.TokenRepository
	likeRepo     repositories.LikeRepository
	uow          repositories.UnitOfWork
	statusPolicy config.LikeStatusPolicy
}

// NewLikeUsecase creates a new like usecase
func NewLikeUsecase(
	tokenRepo repositories.TokenRepository,
	likeRepo repositories.LikeRepository,
	uow repositories.UnitOfWork,
	statusPolicy config.LikeStatusPolicy,
) *LikeUsecase {
	return &LikeUsecase{
		tokenRepo:    tokenRepo,
		likeRepo:     likeRepo,
		uow:          uow,
		statusPolicy: statusPolicy,
	}
}

// AddLike records a like for the given address. The token row is created on
// the fly when absent; ensure-token, like insert and counter bump run in one
// transaction so two concurrent first-likes cannot race the creation.
func (u *LikeUsecase) AddLike(ctx context.Context, address, userIP string) (*LikeResult, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.tokenRepo.Create(txCtx, address); err != nil {
			return err
		}
		if _, err := u.likeRepo.Add(txCtx, address, userIP); err != nil {
			return err
		}
		return u.tokenRepo.IncrementLikeCount(txCtx, address, 1)
	})
	if err != nil {
		return nil, err
	}

	count, err := u.likeRepo.CountByToken(ctx, address)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: true, LikeCount: count}, nil
}

// RemoveLike deletes the caller's like rows for the address and returns how
// many were removed. The counter drops by the same amount, so repeat likes
// from one IP never leave a phantom count behind.
func (u *LikeUsecase) RemoveLike(ctx context.Context, address, userIP string) (int64, error) {
	if err := ValidateAddress(address); err != nil {
		return 0, err
	}

	var removed int64
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		n, err := u.likeRepo.Remove(txCtx, address, userIP)
		if err != nil {
			return err
		}
		removed = n
		return u.tokenRepo.IncrementLikeCount(txCtx, address, -int(n))
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// GetLikeStatus returns the like count plus the hasLiked flag. Under the
// always_false policy hasLiked is pinned to false so clients keep offering
// the like button.
func (u *LikeUsecase) GetLikeStatus(ctx context.Context, address, userIP string) (*LikeStatus, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	count, err := u.likeRepo.CountByToken(ctx, address)
	if err != nil {
		return nil, err
	}

	status := &LikeStatus{LikeCount: count}
	if u.statusPolicy == config.LikeStatusAlwaysFalse {
		return status, nil
	}

	hasLiked, err := u.likeRepo.HasUserLiked(ctx, address, userIP)
	if err != nil {
		return nil, err
	}
	status.HasLiked = hasLiked
	return status, nil
}

// GetUserLikes lists the addresses liked by an IP
func (u *LikeUsecase) GetUserLikes(ctx context.Context, userIP string) ([]string, error) {
	return u.likeRepo.GetUserLikes(ctx, userIP)
}

// GetTopLikedTokens returns the most liked tokens
func (u *LikeUsecase) GetTopLikedTokens(ctx context.Context, limit int) ([]*entities.Token, error) {
	return u.likeRepo.GetTopLikedTokens(ctx, limit)
}
