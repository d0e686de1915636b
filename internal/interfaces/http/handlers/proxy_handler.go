package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/infrastructure/marketdata"
	"palu-board.backend/internal/interfaces/http/response"
	"palu-board.backend/pkg/logger"
)

type MarketDataService interface {
	FetchToken(ctx context.Context, address string) (*marketdata.Result, error)
}

// ProxyHandler relays token metadata lookups to the upstream price API
type ProxyHandler struct {
	client MarketDataService
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(client MarketDataService) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// GetToken proxies a token lookup using the path parameter form
// GET /api/token/:address
func (h *ProxyHandler) GetToken(c *gin.Context) {
	h.relay(c, c.Param("address"))
}

// GetTokenByQuery proxies a token lookup using the legacy query form
// GET /api/token?address=
func (h *ProxyHandler) GetTokenByQuery(c *gin.Context) {
	h.relay(c, c.Query("address"))
}

// relay forwards the upstream response verbatim. The upstream's status code
// and body pass through untouched, including its own error statuses.
func (h *ProxyHandler) relay(c *gin.Context, address string) {
	if address == "" {
		response.Error(c, domainerrors.BadRequest("Token address is required"))
		return
	}

	result, err := h.client.FetchToken(c.Request.Context(), address)
	if err != nil {
		logger.Error(c.Request.Context(), "upstream token fetch failed",
			zap.String("address", address), zap.Error(err))
		response.UpstreamError(c, err.Error())
		return
	}

	c.Data(result.StatusCode, result.ContentType, result.Body)
}
