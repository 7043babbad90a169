package http

import (
	"github.com/gin-gonic/gin"

	"eventask/internal/middleware"
)

// RegisterRoutes maps /calendar paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar", mw.RateLimit())
	{
		cal.GET("", h.Month)
		cal.GET("/ics", h.ExportICS)
	}
}
