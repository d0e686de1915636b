package handlers

import (
	"context"

	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/infrastructure/marketdata"
	"palu-board.backend/internal/usecases"
)

type tokenServiceStub struct {
	createFn     func(ctx context.Context, address string) (*entities.Token, error)
	getAllFn     func(ctx context.Context) ([]*entities.Token, error)
	deleteFn     func(ctx context.Context, address string) (*entities.Token, error)
	initializeFn func(ctx context.Context) (*usecases.InitializeResult, error)
}

func (s *tokenServiceStub) Create(ctx context.Context, address string) (*entities.Token, error) {
	if s.createFn != nil {
		return s.createFn(ctx, address)
	}
	return &entities.Token{Address: address}, nil
}

func (s *tokenServiceStub) GetAll(ctx context.Context) ([]*entities.Token, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return []*entities.Token{}, nil
}

func (s *tokenServiceStub) Delete(ctx context.Context, address string) (*entities.Token, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, address)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenServiceStub) Initialize(ctx context.Context) (*usecases.InitializeResult, error) {
	if s.initializeFn != nil {
		return s.initializeFn(ctx)
	}
	return &usecases.InitializeResult{}, nil
}

type likeServiceStub struct {
	addLikeFn   func(ctx context.Context, address, userIP string) (*usecases.LikeResult, error)
	getStatusFn func(ctx context.Context, address, userIP string) (*usecases.LikeStatus, error)
}

func (s *likeServiceStub) AddLike(ctx context.Context, address, userIP string) (*usecases.LikeResult, error) {
	if s.addLikeFn != nil {
		return s.addLikeFn(ctx, address, userIP)
	}
	return &usecases.LikeResult{Liked: true, LikeCount: 1}, nil
}

func (s *likeServiceStub) GetLikeStatus(ctx context.Context, address, userIP string) (*usecases.LikeStatus, error) {
	if s.getStatusFn != nil {
		return s.getStatusFn(ctx, address, userIP)
	}
	return &usecases.LikeStatus{}, nil
}

type marketDataStub struct {
	fetchFn func(ctx context.Context, address string) (*marketdata.Result, error)
}

func (s *marketDataStub) FetchToken(ctx context.Context, address string) (*marketdata.Result, error) {
	if s.fetchFn != nil {
		return s.fetchFn(ctx, address)
	}
	return &marketdata.Result{StatusCode: 200, ContentType: "application/json", Body: []byte(`{}`)}, nil
}
