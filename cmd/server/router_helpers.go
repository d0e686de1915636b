package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"palu-board.backend/internal/interfaces/http/middleware"
	"palu-board.backend/internal/interfaces/http/response"
)

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "palu-board-backend",
			"version": "0.1.0",
		})
	})
}

// registerFallbackRoutes maps unknown paths and unsupported methods onto the
// error envelope instead of gin's plain-text defaults.
func registerFallbackRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.ErrorWithStatus(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithStatus(c, http.StatusNotFound, "Not found")
	})
}
