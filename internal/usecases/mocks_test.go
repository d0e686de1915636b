package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
)

type tokenRepoStub struct {
	createFn        func(ctx context.Context, address string) (*entities.Token, error)
	getAllFn        func(ctx context.Context) ([]*entities.Token, error)
	findFn          func(ctx context.Context, address string) (*entities.Token, error)
	deleteFn        func(ctx context.Context, address string) (*entities.Token, error)
	incrementFn     func(ctx context.Context, address string, delta int) error
	createdAddrs    []string
	incrementDeltas []int
}

func (s *tokenRepoStub) Create(ctx context.Context, address string) (*entities.Token, error) {
	s.createdAddrs = append(s.createdAddrs, address)
	if s.createFn != nil {
		return s.createFn(ctx, address)
	}
	return &entities.Token{Address: address, CreatedAt: time.Now()}, nil
}

func (s *tokenRepoStub) GetAll(ctx context.Context) ([]*entities.Token, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return []*entities.Token{}, nil
}

func (s *tokenRepoStub) FindByAddress(ctx context.Context, address string) (*entities.Token, error) {
	if s.findFn != nil {
		return s.findFn(ctx, address)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) Delete(ctx context.Context, address string) (*entities.Token, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, address)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) IncrementLikeCount(ctx context.Context, address string, delta int) error {
	s.incrementDeltas = append(s.incrementDeltas, delta)
	if s.incrementFn != nil {
		return s.incrementFn(ctx, address, delta)
	}
	return nil
}

type likeRepoStub struct {
	addFn          func(ctx context.Context, tokenAddress, userIP string) (*entities.Like, error)
	removeFn       func(ctx context.Context, tokenAddress, userIP string) (int64, error)
	countFn        func(ctx context.Context, tokenAddress string) (int64, error)
	hasLikedFn     func(ctx context.Context, tokenAddress, userIP string) (bool, error)
	userLikesFn    func(ctx context.Context, userIP string) ([]string, error)
	topTokensFn    func(ctx context.Context, limit int) ([]*entities.Token, error)
	hasLikedCalled bool
}

func (s *likeRepoStub) Add(ctx context.Context, tokenAddress, userIP string) (*entities.Like, error) {
	if s.addFn != nil {
		return s.addFn(ctx, tokenAddress, userIP)
	}
	return &entities.Like{ID: 1, TokenAddress: tokenAddress, UserIP: userIP}, nil
}

func (s *likeRepoStub) Remove(ctx context.Context, tokenAddress, userIP string) (int64, error) {
	if s.removeFn != nil {
		return s.removeFn(ctx, tokenAddress, userIP)
	}
	return 0, domainerrors.ErrNotFound
}

func (s *likeRepoStub) CountByToken(ctx context.Context, tokenAddress string) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx, tokenAddress)
	}
	return 0, nil
}

func (s *likeRepoStub) HasUserLiked(ctx context.Context, tokenAddress, userIP string) (bool, error) {
	s.hasLikedCalled = true
	if s.hasLikedFn != nil {
		return s.hasLikedFn(ctx, tokenAddress, userIP)
	}
	return false, nil
}

func (s *likeRepoStub) GetUserLikes(ctx context.Context, userIP string) ([]string, error) {
	if s.userLikesFn != nil {
		return s.userLikesFn(ctx, userIP)
	}
	return nil, nil
}

func (s *likeRepoStub) GetTopLikedTokens(ctx context.Context, limit int) ([]*entities.Token, error) {
	if s.topTokensFn != nil {
		return s.topTokensFn(ctx, limit)
	}
	return nil, nil
}

// uowStub runs the function directly without a transaction.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newUsecaseTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.Exec(`CREATE TABLE tokens (
		address TEXT PRIMARY KEY,
		like_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE likes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token_address TEXT NOT NULL,
		user_ip TEXT NOT NULL,
		created_at DATETIME
	);`).Error)
	return db
}
