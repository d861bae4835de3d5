package router

import (
	"huffman_codec_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	SessionHandler *handler.SessionHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", d.SessionHandler.Create)
			sessions.GET("", d.SessionHandler.List)
			sessions.GET("/:id", d.SessionHandler.GetByID)
			sessions.DELETE("/:id", d.SessionHandler.Delete)
			sessions.POST("/:id/encode", d.SessionHandler.Encode)
			sessions.POST("/:id/decode", d.SessionHandler.Decode)
			sessions.GET("/:id/archive", d.SessionHandler.Archive)
		}
	}
}
