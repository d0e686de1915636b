package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/interfaces/http/response"
	"palu-board.backend/internal/usecases"
	"palu-board.backend/pkg/utils"
)

type LikeService interface {
	AddLike(ctx context.Context, address, userIP string) (*usecases.LikeResult, error)
	GetLikeStatus(ctx context.Context, address, userIP string) (*usecases.LikeStatus, error)
}

// LikeHandler handles like ledger endpoints
type LikeHandler struct {
	likeUsecase LikeService
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likeUsecase LikeService) *LikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

// AddLike records a like from the requesting client
// POST /api/tokens/:address/like
func (h *LikeHandler) AddLike(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}

	result, err := h.likeUsecase.AddLike(c.Request.Context(), address, utils.ClientIP(c.Request))
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) || errors.Is(err, domainerrors.ErrInvalidAddress) {
			response.Error(c, domainerrors.BadRequest("Invalid token address"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetLikes reports a token's like count and whether this client liked it
// GET /api/tokens/:address/likes
func (h *LikeHandler) GetLikes(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}

	status, err := h.likeUsecase.GetLikeStatus(c.Request.Context(), address, utils.ClientIP(c.Request))
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) || errors.Is(err, domainerrors.ErrInvalidAddress) {
			response.Error(c, domainerrors.BadRequest("Invalid token address"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}
