package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel đọc mức log từ chuỗi cấu hình, mặc định là info
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
	With(key string, value interface{}) Logger
}

// DefaultLogger implement Logger interface sử dụng zerolog
type DefaultLogger struct {
	zl zerolog.Logger
}

// NewDefaultLogger tạo logger dạng console ghi ra stderr
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}, level)
}

// NewJSONLogger tạo logger dạng JSON cho môi trường qc/prod
func NewJSONLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stdout, level)
}

func NewLogger(w io.Writer, level Level) *DefaultLogger {
	zl := zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger()
	return &DefaultLogger{zl: zl}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn log cảnh báo
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// With trả về logger con có thêm một trường cố định
func (l *DefaultLogger) With(key string, value interface{}) Logger {
	return &DefaultLogger{zl: l.zl.With().Interface(key, value).Logger()}
}

// Nop là logger bỏ qua mọi thứ, dùng trong test
func Nop() Logger {
	return &DefaultLogger{zl: zerolog.Nop()}
}
