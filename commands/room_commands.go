package commands

import (
	"errors"

	"hostel/constants"
	"hostel/models"

	"gorm.io/gorm"
)

// ErrNotApplied nghĩa là lệnh không tác động được tới dòng nào
var ErrNotApplied = errors.New("room status command not applied")

// RoomCommand định nghĩa interface cho các lệnh đổi trạng thái phòng.
// Lệnh luôn chạy trong transaction của booking.
type RoomCommand interface {
	Execute() error
}

// OccupyRoomCommand chuyển phòng available -> occupied.
// Điều kiện nằm ngay trong câu UPDATE nên hai booking đồng thời không thể cùng thành công.
type OccupyRoomCommand struct {
	tx     *gorm.DB
	roomID uint
}

func NewOccupyRoomCommand(tx *gorm.DB, roomID uint) *OccupyRoomCommand {
	return &OccupyRoomCommand{
		tx:     tx,
		roomID: roomID,
	}
}

func (c *OccupyRoomCommand) Execute() error {
	return transition(c.tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", c.roomID, constants.RoomStatusAvailable),
		constants.RoomStatusOccupied)
}

// ReleaseRoomCommand đưa phòng về available bất kể trạng thái hiện tại
type ReleaseRoomCommand struct {
	tx     *gorm.DB
	roomID uint
}

func NewReleaseRoomCommand(tx *gorm.DB, roomID uint) *ReleaseRoomCommand {
	return &ReleaseRoomCommand{
		tx:     tx,
		roomID: roomID,
	}
}

func (c *ReleaseRoomCommand) Execute() error {
	return transition(c.tx.Model(&models.Room{}).Where("id = ?", c.roomID),
		constants.RoomStatusAvailable)
}

func transition(q *gorm.DB, status string) error {
	res := q.Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotApplied
	}
	return nil
}
