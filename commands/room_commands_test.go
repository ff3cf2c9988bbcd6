package commands

import (
	"fmt"
	"testing"

	"hostel/config"
	"hostel/constants"
	"hostel/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRoomDB(t *testing.T, status string) (*gorm.DB, models.Room) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.OpenDB(sqlite.Open(dsn), gormlogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	room := models.Room{Number: "101", Type: "dorm", Capacity: 2, Price: 10, Status: status}
	require.NoError(t, db.Create(&room).Error)
	return db, room
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return room.Status
}

func TestOccupyRoom(t *testing.T) {
	db, room := newRoomDB(t, constants.RoomStatusAvailable)

	require.NoError(t, NewOccupyRoomCommand(db, room.ID).Execute())
	assert.Equal(t, constants.RoomStatusOccupied, roomStatus(t, db, room.ID))

	// Lần thứ hai không còn available nên không áp dụng
	assert.ErrorIs(t, NewOccupyRoomCommand(db, room.ID).Execute(), ErrNotApplied)
}

func TestOccupyRoomInMaintenance(t *testing.T) {
	db, room := newRoomDB(t, constants.RoomStatusMaintenance)

	assert.ErrorIs(t, NewOccupyRoomCommand(db, room.ID).Execute(), ErrNotApplied)
	assert.Equal(t, constants.RoomStatusMaintenance, roomStatus(t, db, room.ID))
}

func TestReleaseRoom(t *testing.T) {
	for _, status := range constants.RoomStatuses {
		t.Run(status, func(t *testing.T) {
			db, room := newRoomDB(t, status)

			require.NoError(t, NewReleaseRoomCommand(db, room.ID).Execute())
			assert.Equal(t, constants.RoomStatusAvailable, roomStatus(t, db, room.ID))
		})
	}
}

func TestReleaseMissingRoom(t *testing.T) {
	db, _ := newRoomDB(t, constants.RoomStatusOccupied)

	var cmd RoomCommand = NewReleaseRoomCommand(db, 999)
	assert.ErrorIs(t, cmd.Execute(), ErrNotApplied)
}
