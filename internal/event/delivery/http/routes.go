package http

import (
	"github.com/gin-gonic/gin"

	"event-calendar-webhook/internal/middleware"
)

// RegisterRoutes maps the webhook to Submit behind the IP allow-list and
// rate limiter.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	webhook := r.Group("/webhook", mw.AllowIPs(), mw.RateLimit())
	{
		webhook.GET("", h.Submit)
		webhook.POST("", h.Submit)
	}
}
