package models

import (
	"fmt"
	"slices"
	"time"

	"hostel/constants"
)

type Room struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Number    string    `json:"number" gorm:"uniqueIndex;not null"`
	Type      string    `json:"type" gorm:"not null"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:available;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Bookings  []Booking `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`
}

func (r *Room) ValidateStatus() error {
	if !slices.Contains(constants.RoomStatuses, r.Status) {
		return fmt.Errorf("invalid status: %q, must be one of %v", r.Status, constants.RoomStatuses)
	}
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable
}
