package services

import (
	"context"
	"errors"
	"time"

	"hostel/builders"
	"hostel/commands"
	"hostel/constants"
	"hostel/dto"
	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"
	"hostel/services/notification"
	"hostel/validator"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService giữ bất biến giữa booking và trạng thái phòng
type BookingService struct {
	db       *gorm.DB
	logger   logger.Logger
	cache    *RoomCache
	notifier notification.Service
	loc      *time.Location
	now      func() time.Time
}

type BookingServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Cache    *RoomCache
	Notifier notification.Service
	// Location xác định "hôm nay" cho TodayStats, mặc định UTC
	Location *time.Location
	Now      func() time.Time
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	s := &BookingService{
		db:       opts.DB,
		logger:   opts.Logger,
		cache:    opts.Cache,
		notifier: opts.Notifier,
		loc:      opts.Location,
		now:      opts.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.DB("list bookings", err)
	}
	return bookings, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		First(&booking, id).Error
	if err != nil {
		return nil, lookupError(err, apperrors.ErrBookingNotFound, "get booking")
	}
	return &booking, nil
}

// today trả về ngày hiện tại theo múi giờ cấu hình, biểu diễn như mọi ngày đã lưu (00:00 UTC)
func (s *BookingService) today() datatypes.Date {
	y, m, d := s.now().In(s.loc).Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (s *BookingService) TodayStats(ctx context.Context) (*dto.TodayStats, error) {
	today := s.today()
	db := s.db.WithContext(ctx)

	stats := &dto.TodayStats{}
	if err := db.Model(&models.Booking{}).Where("check_in = ?", today).Count(&stats.Checkins).Error; err != nil {
		return nil, apperrors.DB("count checkins", err)
	}
	if err := db.Model(&models.Booking{}).Where("check_out = ?", today).Count(&stats.Checkouts).Error; err != nil {
		return nil, apperrors.DB("count checkouts", err)
	}
	return stats, nil
}

// CreateBooking tạo booking và chuyển phòng sang occupied trong cùng một transaction
func (s *BookingService) CreateBooking(ctx context.Context, req dto.BookingRequest) (*models.Booking, error) {
	checkIn, checkOut, err := validator.ValidateBooking(&req)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithGuest(req.GuestID).
		WithRoom(req.RoomID).
		WithStay(checkIn, checkOut).
		WithStatus(req.Status).
		Build()

	var room models.Room
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, req.GuestID).Error; err != nil {
			return lookupError(err, apperrors.ErrGuestNotFound, "get guest")
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, req.RoomID).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound, "get room")
		}
		if !room.IsAvailable() {
			return apperrors.ErrRoomNotAvailable()
		}

		if err := tx.Omit(clause.Associations).Create(booking).Error; err != nil {
			return apperrors.DB("create booking", err)
		}

		if err := commands.NewOccupyRoomCommand(tx, room.ID).Execute(); err != nil {
			if errors.Is(err, commands.ErrNotApplied) {
				return apperrors.ErrRoomNotAvailable()
			}
			return apperrors.DB("occupy room", err)
		}
		room.Status = constants.RoomStatusOccupied

		guest.RecordStay(checkIn)
		if err := tx.Model(&guest).Select("total_stays", "last_visit").Updates(&guest).Error; err != nil {
			return apperrors.DB("record guest stay", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking %d created: guest %d, room %s occupied", booking.ID, booking.GuestID, room.Number)
	s.afterRoomChange(ctx, room)
	return booking, nil
}

// UpdateBooking chỉ ghi đè trường, không kiểm tra lại phòng trống và không đồng bộ trạng thái phòng
func (s *BookingService) UpdateBooking(ctx context.Context, id uint, req dto.BookingRequest) (*models.Booking, error) {
	checkIn, checkOut, err := validator.ValidateBooking(&req)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			return lookupError(err, apperrors.ErrBookingNotFound, "get booking")
		}
		if err := tx.Select("id").First(&models.Guest{}, req.GuestID).Error; err != nil {
			return lookupError(err, apperrors.ErrGuestNotFound, "get guest")
		}
		if err := tx.Select("id").First(&models.Room{}, req.RoomID).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound, "get room")
		}

		updated := builders.NewBookingBuilder().
			WithGuest(req.GuestID).
			WithRoom(req.RoomID).
			WithStay(checkIn, checkOut).
			WithStatus(req.Status).
			Build()
		booking.GuestID = updated.GuestID
		booking.RoomID = updated.RoomID
		booking.CheckIn = updated.CheckIn
		booking.CheckOut = updated.CheckOut
		booking.Status = updated.Status

		if err := tx.Omit(clause.Associations).Save(&booking).Error; err != nil {
			return apperrors.DB("update booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking trả phòng về available rồi xóa booking, cả hai trong một transaction.
// Phòng luôn được trả về available kể cả khi booking khác cũng trỏ tới nó.
func (s *BookingService) DeleteBooking(ctx context.Context, id uint) error {
	var room models.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			return lookupError(err, apperrors.ErrBookingNotFound, "get booking")
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Inconsistent("room referenced by booking is missing", err)
		}
		if err != nil {
			return apperrors.DB("get room", err)
		}

		if err := commands.NewReleaseRoomCommand(tx, room.ID).Execute(); err != nil {
			if errors.Is(err, commands.ErrNotApplied) {
				return apperrors.Inconsistent("room referenced by booking is missing", err)
			}
			return apperrors.DB("release room", err)
		}
		room.Status = constants.RoomStatusAvailable

		if err := tx.Delete(&booking).Error; err != nil {
			return apperrors.DB("delete booking", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking %d deleted: room %s available", id, room.Number)
	s.afterRoomChange(ctx, room)
	return nil
}

// afterRoomChange chạy sau commit: xóa cache phòng và phát thông báo, lỗi chỉ được log
func (s *BookingService) afterRoomChange(ctx context.Context, room models.Room) {
	s.cache.Invalidate(ctx)

	if s.notifier == nil {
		return
	}
	msg, err := notification.NewMessageBuilder(room.ID, room.Number, room.Status).Build()
	if err != nil {
		s.logger.Error("build room status message: %v", err)
		return
	}
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Warn("broadcast room %d status: %v", room.ID, err)
	}
}
