package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "palu-board.backend/internal/domain/errors"
)

// Success sends a success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error sends an error envelope, mapping domain errors to their HTTP status
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"success": false,
		"error":   appErr.Message,
	})
}

// ErrorWithStatus sends an error envelope with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// UpstreamError reports a failed proxy call to an external API
func UpstreamError(c *gin.Context, detail string) {
	c.JSON(http.StatusBadGateway, gin.H{
		"success": false,
		"error":   "Upstream error",
		"detail":  detail,
	})
}
