package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hostel/config"
	"hostel/dto"
	"hostel/models"
	"hostel/services/logger"
	"hostel/services/notification"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	guests   *GuestService
	rooms    *RoomService
	bookings *BookingService
	notifier *notification.Recorder
}

// newTestDB mở một SQLite in-memory riêng cho mỗi test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := config.OpenDB(sqlite.Open(dsn), gormlogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestEnv(t *testing.T, cache *RoomCache, now func() time.Time) *testEnv {
	t.Helper()
	db := newTestDB(t)
	rec := &notification.Recorder{}
	log := logger.Nop()
	return &testEnv{
		db:       db,
		guests:   NewGuestService(GuestServiceOptions{DB: db, Logger: log}),
		rooms:    NewRoomService(RoomServiceOptions{DB: db, Logger: log, Cache: cache}),
		bookings: NewBookingService(BookingServiceOptions{DB: db, Logger: log, Cache: cache, Notifier: rec, Now: now}),
		notifier: rec,
	}
}

func guestRequest(n int) dto.GuestRequest {
	return dto.GuestRequest{
		FirstName:  "Ana",
		LastName:   "Silva",
		Email:      fmt.Sprintf("ana%d@example.com", n),
		Phone:      "+351900000000",
		Country:    "PT",
		DocumentID: fmt.Sprintf("DOC-%d", n),
	}
}

func roomRequest(number, status string) dto.RoomRequest {
	price := 25.5
	return dto.RoomRequest{
		Number:   number,
		Type:     "dorm",
		Capacity: 4,
		Price:    &price,
		Status:   status,
	}
}

func bookingRequest(guestID, roomID uint, checkIn, checkOut string) dto.BookingRequest {
	return dto.BookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func (e *testEnv) mustGuest(t *testing.T, n int) *models.Guest {
	t.Helper()
	g, err := e.guests.CreateGuest(context.Background(), guestRequest(n))
	require.NoError(t, err)
	return g
}

func (e *testEnv) mustRoom(t *testing.T, number, status string) *models.Room {
	t.Helper()
	r, err := e.rooms.CreateRoom(context.Background(), roomRequest(number, status))
	require.NoError(t, err)
	return r
}
