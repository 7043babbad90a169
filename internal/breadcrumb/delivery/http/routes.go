package http

import (
	"github.com/gin-gonic/gin"

	"eventask/internal/middleware"
)

// RegisterRoutes maps /breadcrumbs paths to handler methods. The stream is
// long-lived and stays outside the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bc := rg.Group("/breadcrumbs")
	{
		bc.POST("/navigate", mw.RateLimit(), h.Navigate)
		bc.GET("", mw.RateLimit(), h.Trail)
		bc.DELETE("", mw.RateLimit(), h.Reset)
		bc.GET("/stream", h.Stream)
	}
}
