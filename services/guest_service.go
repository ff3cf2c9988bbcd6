package services

import (
	"context"

	"hostel/dto"
	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"
	"hostel/validator"

	"gorm.io/gorm"
)

type GuestService struct {
	db     *gorm.DB
	logger logger.Logger
}

type GuestServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewGuestService(opts GuestServiceOptions) *GuestService {
	return &GuestService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

func (s *GuestService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.db.WithContext(ctx).Order("id").Find(&guests).Error; err != nil {
		return nil, apperrors.DB("list guests", err)
	}
	return guests, nil
}

func (s *GuestService) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrGuestNotFound, "get guest")
	}
	return &guest, nil
}

func (s *GuestService) CreateGuest(ctx context.Context, req dto.GuestRequest) (*models.Guest, error) {
	if err := validator.ValidateGuest(&req); err != nil {
		return nil, err
	}

	var guest models.Guest
	req.Apply(&guest)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureGuestUnique(tx, req.Email, req.DocumentID, 0); err != nil {
			return err
		}
		if err := tx.Create(&guest).Error; err != nil {
			return writeError(err, apperrors.ErrGuestExists, "create guest")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created guest %d (%s)", guest.ID, guest.Email)
	return &guest, nil
}

// UpdateGuest ghi đè toàn bộ trường của guest, total_stays và last_visit giữ nguyên
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, req dto.GuestRequest) (*models.Guest, error) {
	if err := validator.ValidateGuest(&req); err != nil {
		return nil, err
	}

	var guest models.Guest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, id).Error; err != nil {
			return lookupError(err, apperrors.ErrGuestNotFound, "get guest")
		}
		if err := ensureGuestUnique(tx, req.Email, req.DocumentID, id); err != nil {
			return err
		}
		req.Apply(&guest)
		if err := tx.Save(&guest).Error; err != nil {
			return writeError(err, apperrors.ErrGuestExists, "update guest")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// DeleteGuest không xóa dây chuyền, guest còn booking thì trả về conflict
func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			return lookupError(err, apperrors.ErrGuestNotFound, "get guest")
		}

		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("guest_id = ?", id).Count(&bookings).Error; err != nil {
			return apperrors.DB("count guest bookings", err)
		}
		if bookings > 0 {
			return apperrors.Conflict("Guest still has bookings", nil)
		}

		if err := tx.Delete(&guest).Error; err != nil {
			return apperrors.DB("delete guest", err)
		}
		s.logger.Info("deleted guest %d", id)
		return nil
	})
}

func ensureGuestUnique(tx *gorm.DB, email, documentID string, excludeID uint) error {
	var count int64
	err := tx.Model(&models.Guest{}).
		Where("(email = ? OR document_id = ?) AND id <> ?", email, documentID, excludeID).
		Count(&count).Error
	if err != nil {
		return apperrors.DB("check guest uniqueness", err)
	}
	if count > 0 {
		return apperrors.ErrGuestExists(nil)
	}
	return nil
}
