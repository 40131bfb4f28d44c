package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
)

func RequestLogger(log *logger.Logger, metricsProvider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		metricsProvider.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(status))
		metricsProvider.RecordHTTPRequestDuration(c.Request.Method, path, duration)

		log.Info("Request handled",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", duration))
	}
}
