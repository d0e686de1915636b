package usecases

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/domain/repositories"
	"palu-board.backend/pkg/logger"
)

// TokenUsecase handles token registry business logic
type TokenUsecase struct {
	tokenRepo   repositories.TokenRepository
	seedBatches []SeedBatch
}

// NewTokenUsecase creates a new token usecase
func NewTokenUsecase(tokenRepo repositories.TokenRepository, seedBatches []SeedBatch) *TokenUsecase {
	return &TokenUsecase{
		tokenRepo:   tokenRepo,
		seedBatches: seedBatches,
	}
}

// ValidateAddress checks the chain address format. The stored case is
// whatever the client supplied; only the shape is enforced.
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return domainerrors.ErrInvalidInput
	}
	if !common.IsHexAddress(address) {
		return domainerrors.ErrInvalidAddress
	}
	return nil
}

// Create registers a token idempotently. Returns (nil, nil) when the address
// was already tracked.
func (u *TokenUsecase) Create(ctx context.Context, address string) (*entities.Token, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return u.tokenRepo.Create(ctx, address)
}

// GetAll returns every tracked token, most liked first
func (u *TokenUsecase) GetAll(ctx context.Context) ([]*entities.Token, error) {
	return u.tokenRepo.GetAll(ctx)
}

// Delete removes a token from the registry
func (u *TokenUsecase) Delete(ctx context.Context, address string) (*entities.Token, error) {
	return u.tokenRepo.Delete(ctx, address)
}

// InitializeOutcome is one per-address result of batch initialization
type InitializeOutcome struct {
	Address string          `json:"address"`
	Batch   string          `json:"batch"`
	Success bool            `json:"success"`
	Token   *entities.Token `json:"token,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// InitializeSummary aggregates the batch initialization run
type InitializeSummary struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Batches    map[string]int `json:"batches"`
}

// InitializeResult is the full batch initialization report
type InitializeResult struct {
	Message string              `json:"message"`
	Summary InitializeSummary   `json:"summary"`
	Results []InitializeOutcome `json:"results"`
	Errors  []InitializeOutcome `json:"errors"`
}

// Initialize seeds the registry from the configured batches. Each address is
// created idempotently and independently; a failing address is reported and
// never aborts the rest.
func (u *TokenUsecase) Initialize(ctx context.Context) (*InitializeResult, error) {
	result := &InitializeResult{
		Message: "Token registry initialization completed",
		Summary: InitializeSummary{Batches: make(map[string]int)},
		Results: []InitializeOutcome{},
		Errors:  []InitializeOutcome{},
	}

	for _, batch := range u.seedBatches {
		result.Summary.Batches[batch.Name] = len(batch.Addresses)

		for _, address := range batch.Addresses {
			result.Summary.Total++

			outcome := InitializeOutcome{Address: address, Batch: batch.Name}
			if err := ValidateAddress(address); err != nil {
				outcome.Error = err.Error()
				result.Summary.Failed++
				result.Errors = append(result.Errors, outcome)
				logger.Warn(ctx, "Seed address rejected",
					zap.String("address", address),
					zap.String("batch", batch.Name),
					zap.Error(err),
				)
				continue
			}

			token, err := u.tokenRepo.Create(ctx, address)
			if err != nil {
				outcome.Error = err.Error()
				result.Summary.Failed++
				result.Errors = append(result.Errors, outcome)
				logger.Warn(ctx, "Seed address insert failed",
					zap.String("address", address),
					zap.String("batch", batch.Name),
					zap.Error(err),
				)
				continue
			}

			outcome.Success = true
			outcome.Token = token // nil when the address already existed
			result.Summary.Successful++
			result.Results = append(result.Results, outcome)
		}
	}

	logger.Info(ctx, "Token registry initialized",
		zap.Int("total", result.Summary.Total),
		zap.Int("successful", result.Summary.Successful),
		zap.Int("failed", result.Summary.Failed),
	)
	return result, nil
}
