package services

import (
	"context"

	"hostel/constants"
	"hostel/dto"
	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"
	"hostel/validator"

	"gorm.io/gorm"
)

type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *RoomCache
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *RoomCache
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		db:     opts.DB,
		logger: opts.Logger,
		cache:  opts.Cache,
	}
}

func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.listCached(ctx, CacheKeyRooms, s.db.WithContext(ctx))
}

func (s *RoomService) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	return s.listCached(ctx, CacheKeyAvailableRooms,
		s.db.WithContext(ctx).Where("status = ?", constants.RoomStatusAvailable))
}

func (s *RoomService) listCached(ctx context.Context, key string, q *gorm.DB) ([]models.Room, error) {
	if rooms, ok := s.cache.Get(ctx, key); ok {
		return rooms, nil
	}

	gen, cacheable := s.cache.Generation(ctx)

	var rooms []models.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, apperrors.DB("list rooms", err)
	}
	if cacheable {
		s.cache.Set(ctx, key, gen, rooms)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrRoomNotFound, "get room")
	}
	return &room, nil
}

// RoomStats đếm phòng theo trạng thái bằng một truy vấn GROUP BY, không cache
func (s *RoomService) RoomStats(ctx context.Context) (*dto.RoomStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.WithContext(ctx).Model(&models.Room{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.DB("room stats", err)
	}

	stats := &dto.RoomStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case constants.RoomStatusAvailable:
			stats.Available = row.Count
		case constants.RoomStatusOccupied:
			stats.Occupied = row.Count
		case constants.RoomStatusMaintenance:
			stats.Maintenance = row.Count
		default:
			s.logger.Warn("room stats: %d rooms with unknown status %q", row.Count, row.Status)
		}
	}
	return stats, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	if err := validator.ValidateRoom(&req); err != nil {
		return nil, err
	}

	var room models.Room
	req.Apply(&room)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRoomNumberUnique(tx, room.Number, 0); err != nil {
			return err
		}
		if err := tx.Create(&room).Error; err != nil {
			return writeError(err, apperrors.ErrRoomExists, "create room")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("created room %d (%s)", room.ID, room.Number)
	return &room, nil
}

// UpdateRoom ghi đè toàn bộ trường, kể cả status (cách duy nhất để vào/ra maintenance)
func (s *RoomService) UpdateRoom(ctx context.Context, id uint, req dto.RoomRequest) (*models.Room, error) {
	if err := validator.ValidateRoom(&req); err != nil {
		return nil, err
	}

	var room models.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound, "get room")
		}
		if err := ensureRoomNumberUnique(tx, req.Number, id); err != nil {
			return err
		}
		req.Apply(&room)
		if err := room.ValidateStatus(); err != nil {
			return apperrors.Validation(err.Error())
		}
		if err := tx.Save(&room).Error; err != nil {
			return writeError(err, apperrors.ErrRoomExists, "update room")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return &room, nil
}

// DeleteRoom không xóa dây chuyền, phòng còn booking thì trả về conflict
func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound, "get room")
		}

		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", id).Count(&bookings).Error; err != nil {
			return apperrors.DB("count room bookings", err)
		}
		if bookings > 0 {
			return apperrors.Conflict("Room still has bookings", nil)
		}

		if err := tx.Delete(&room).Error; err != nil {
			return apperrors.DB("delete room", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("deleted room %d", id)
	return nil
}

func ensureRoomNumberUnique(tx *gorm.DB, number string, excludeID uint) error {
	var count int64
	err := tx.Model(&models.Room{}).
		Where("number = ? AND id <> ?", number, excludeID).
		Count(&count).Error
	if err != nil {
		return apperrors.DB("check room number", err)
	}
	if count > 0 {
		return apperrors.ErrRoomExists(nil)
	}
	return nil
}
