package main

import (
	"github.com/gin-gonic/gin"
	"palu-board.backend/internal/chat"
	"palu-board.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	tokenHandler *handlers.TokenHandler
	likeHandler  *handlers.LikeHandler
	proxyHandler *handlers.ProxyHandler
	chatHandler  *chat.Handler

	// likeRateLimiter guards POST like when the per-IP cap is enabled;
	// nil leaves the endpoint unthrottled.
	likeRateLimiter gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Upstream price proxy, path form plus the legacy query form.
		api.GET("/token/:address", d.proxyHandler.GetToken)
		api.GET("/token", d.proxyHandler.GetTokenByQuery)

		tokens := api.Group("/tokens")
		{
			tokens.GET("", d.tokenHandler.ListTokens)
			tokens.POST("", d.tokenHandler.CreateToken)
			tokens.POST("/initialize", d.tokenHandler.InitializeTokens)
			tokens.DELETE("/:address", d.tokenHandler.DeleteToken)

			if d.likeRateLimiter != nil {
				tokens.POST("/:address/like", d.likeRateLimiter, d.likeHandler.AddLike)
			} else {
				tokens.POST("/:address/like", d.likeHandler.AddLike)
			}
			tokens.GET("/:address/likes", d.likeHandler.GetLikes)
		}
	}

	if d.chatHandler != nil {
		r.GET("/ws/chat", d.chatHandler.HandleConnection)
	}
}
