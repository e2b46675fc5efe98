package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bar-bike/logx"
)

// RequestLogger replaces gin's default logger with one zerolog line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logx.Info()
		switch {
		case status >= 500:
			event = logx.Error()
		case status >= 400:
			event = logx.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
