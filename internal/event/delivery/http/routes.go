package http

import (
	"github.com/gin-gonic/gin"

	"eventask/internal/middleware"
)

// RegisterRoutes maps /events verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.RateLimit())
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
