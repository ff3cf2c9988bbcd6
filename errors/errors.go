package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Client errors
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeConflict         ErrorCode = "CONFLICT"
	ErrCodeRoomNotAvailable ErrorCode = "ROOM_NOT_AVAILABLE"
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"

	// Server errors
	ErrCodeInconsistent ErrorCode = "INCONSISTENT_STATE"
	ErrCodeDBError      ErrorCode = "DB_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ error, kể cả khi đã bị wrap
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi của err
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// HTTPStatus ánh xạ lỗi sang HTTP status
func HTTPStatus(err error) int {
	appErr := GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRoomNotAvailable, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(ErrCodeConflict, message, err)
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func Inconsistent(message string, err error) *AppError {
	return NewAppError(ErrCodeInconsistent, message, err)
}

func DB(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

func ErrGuestNotFound() *AppError   { return NotFound("Guest not found") }
func ErrRoomNotFound() *AppError    { return NotFound("Room not found") }
func ErrBookingNotFound() *AppError { return NotFound("Booking not found") }

func ErrRoomNotAvailable() *AppError {
	return NewAppError(ErrCodeRoomNotAvailable, "Room is not available", nil)
}

func ErrGuestExists(err error) *AppError {
	return Conflict("Guest with this email or document id already exists", err)
}

func ErrRoomExists(err error) *AppError {
	return Conflict("Room with this number already exists", err)
}
