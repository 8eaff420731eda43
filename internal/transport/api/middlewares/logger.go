package middlewares

import (
	"time"

	"github.com/fsdevblog/ecoledger/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// RequestID берет id запроса из заголовка RequestIDHeader или генерирует новый и возвращает его в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// Logger пишет в лог каждый запрос. Ошибки из c.Errors попадают в поле errors, исходная ошибка сервиса
// (Meta) в поле cause.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := logger.Module(l, "http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		}
		if len(c.Errors) == 0 {
			entry.WithFields(fields).Info("request")
			return
		}

		fields["errors"] = c.Errors.String()
		if meta, ok := c.Errors[0].Meta.(string); ok {
			fields["cause"] = meta
		}
		if c.Writer.Status() >= 500 { //nolint:mnd
			entry.WithFields(fields).Error("request failed")
			return
		}
		entry.WithFields(fields).Warn("request rejected")
	}
}
