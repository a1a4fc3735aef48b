package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// slowRequest promotes otherwise quiet requests to a warning.
const slowRequest = time.Second

// Logger writes one record per served request. Probe and documentation
// traffic is not logged unless it fails.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		if status < 400 && isQuietPath(c.Request.URL.Path) {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []any{
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", elapsed.Milliseconds(),
			"client_ip", c.ClientIP(),
			"bytes_out", c.Writer.Size(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			fields = append(fields, "errors", errs.Errors())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400 || elapsed > slowRequest:
			log.Warnw("request served", fields...)
		default:
			log.Infow("request served", fields...)
		}
	}
}

func isQuietPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/swagger/")
}
