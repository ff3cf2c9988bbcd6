package models

import (
	"time"

	"gorm.io/datatypes"
)

type Guest struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	FirstName  string          `json:"first_name" gorm:"not null"`
	LastName   string          `json:"last_name" gorm:"not null"`
	Email      string          `json:"email" gorm:"uniqueIndex;not null"`
	Phone      string          `json:"phone" gorm:"not null"`
	Country    string          `json:"country" gorm:"not null"`
	DocumentID string          `json:"document_id" gorm:"column:document_id;uniqueIndex;not null"`
	TotalStays int             `json:"total_stays" gorm:"default:0;not null"`
	LastVisit  *datatypes.Date `json:"last_visit" gorm:"type:date"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Bookings   []Booking       `json:"-" gorm:"foreignKey:GuestID;constraint:OnDelete:RESTRICT"`
}

// RecordStay cộng một lượt ở và cập nhật ngày ghé gần nhất
func (g *Guest) RecordStay(checkIn datatypes.Date) {
	g.TotalStays++
	if g.LastVisit == nil || time.Time(checkIn).After(time.Time(*g.LastVisit)) {
		visit := checkIn
		g.LastVisit = &visit
	}
}
