package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	GuestID   uint           `json:"guest_id" gorm:"not null;index"`
	Guest     Guest          `json:"-" gorm:"foreignKey:GuestID"`
	RoomID    uint           `json:"room_id" gorm:"not null;index"`
	Room      Room           `json:"-" gorm:"foreignKey:RoomID"`
	CheckIn   datatypes.Date `json:"check_in" gorm:"type:date;not null;index"`
	CheckOut  datatypes.Date `json:"check_out" gorm:"type:date;not null;index"`
	Status    string         `json:"status" gorm:"default:active;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// All trả về danh sách model cần AutoMigrate
func All() []interface{} {
	return []interface{}{&Guest{}, &Room{}, &Booking{}}
}
