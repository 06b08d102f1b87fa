package server

import (
	"time"

	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs each request with its outcome and timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start).String(),
	}
	if query := c.Request.URL.RawQuery; query != "" {
		fields["query"] = query
	}

	utils.Info("HTTP Request", fields)
}
