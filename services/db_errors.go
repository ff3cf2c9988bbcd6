package services

import (
	"errors"

	apperrors "hostel/errors"

	"gorm.io/gorm"
)

// lookupError chuyển lỗi khi đọc một bản ghi: không tìm thấy -> notFound, còn lại -> DB_ERROR
func lookupError(err error, notFound func() *apperrors.AppError, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound()
	}
	return apperrors.DB(op, err)
}

// writeError chuyển lỗi khi ghi: vi phạm unique -> conflict, còn lại -> DB_ERROR
func writeError(err error, conflict func(error) *apperrors.AppError, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict(err)
	}
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.DB(op, err)
}
