package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger replaces gin's default logger with one line per request on
// the structured logger.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	ctx := c.Request.Context()
	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	}
	if len(c.Errors) > 0 {
		args = append(args, "errors", c.Errors.String())
	}
	if c.Writer.Status() >= 500 {
		h.log.Error(ctx, "request", args...)
		return
	}
	h.log.Info(ctx, "request", args...)
}

// observe records route-level Prometheus metrics. Unmatched paths share a
// single label so arbitrary URLs cannot grow the series count.
func (h *Handler) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	h.metrics.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
}
