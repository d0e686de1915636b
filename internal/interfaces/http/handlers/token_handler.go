package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"palu-board.backend/internal/domain/entities"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/interfaces/http/response"
	"palu-board.backend/internal/usecases"
)

type TokenService interface {
	Create(ctx context.Context, address string) (*entities.Token, error)
	GetAll(ctx context.Context) ([]*entities.Token, error)
	Delete(ctx context.Context, address string) (*entities.Token, error)
	Initialize(ctx context.Context) (*usecases.InitializeResult, error)
}

// TokenHandler handles token registry endpoints
type TokenHandler struct {
	tokenUsecase TokenService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenUsecase TokenService) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

type createTokenInput struct {
	Address string `json:"address"`
}

// ListTokens lists all tracked tokens, most liked first
// GET /api/tokens
func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenUsecase.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tokens": tokens})
}

// CreateToken registers a token address
// POST /api/tokens
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var input createTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}
	if input.Address == "" {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}

	token, err := h.tokenUsecase.Create(c.Request.Context(), input.Address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) || errors.Is(err, domainerrors.ErrInvalidAddress) {
			response.Error(c, domainerrors.BadRequest("Invalid token address"))
			return
		}
		response.Error(c, err)
		return
	}

	if token == nil {
		// Already tracked; idempotent no-op.
		response.Success(c, http.StatusOK, gin.H{"message": "Token already exists", "address": input.Address})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"token": token})
}

// DeleteToken removes a token from the registry
// DELETE /api/tokens/:address
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}

	token, err := h.tokenUsecase.Delete(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Token not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// InitializeTokens seeds the registry with the known address batches
// POST /api/tokens/initialize
func (h *TokenHandler) InitializeTokens(c *gin.Context) {
	result, err := h.tokenUsecase.Initialize(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
