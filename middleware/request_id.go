package middleware

import (
	"time"

	"hostel/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ContextLogger   = "logger"
)

// RequestID tạo request id nếu client chưa gửi và gán vào context + header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderRequestID, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()
	}
}

// AccessLog ghi một dòng log cho mỗi request, kèm request id
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With("request_id", c.GetString(HeaderRequestID))
		c.Set(ContextLogger, reqLog)

		c.Next()

		status := c.Writer.Status()
		line := "%s %s -> %d (%s)"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		switch {
		case status >= 500:
			reqLog.Error(line, args...)
		case status >= 400:
			reqLog.Warn(line, args...)
		default:
			reqLog.Info(line, args...)
		}
	}
}

// Logger lấy logger theo request, không có thì dùng fallback
func Logger(c *gin.Context, fallback logger.Logger) logger.Logger {
	if v, ok := c.Get(ContextLogger); ok {
		if l, ok := v.(logger.Logger); ok {
			return l
		}
	}
	return fallback
}
