package http

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	handler "protect-connect/internal/adapter/handler/http"
)

// RegisterRoutes sets up the routes for the protect handler and common health checks.
func RegisterRoutes(r *router.Router, h *handler.ProtectHandler, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")

	r.GET("/endpoint", h.GetEndpoint)
	r.GET("/endpoint/status", h.GetEndpointStatus)
	r.POST("/endpoint/copy", h.CopyEndpoint)
	r.POST("/connect", h.Connect)

	logger.Info("Setting up health check route...")
	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
}
