package builders

import (
	"hostel/constants"
	"hostel/models"

	"gorm.io/datatypes"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithGuest thêm thông tin khách
func (b *BookingBuilder) WithGuest(guestID uint) *BookingBuilder {
	b.booking.GuestID = guestID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithStay thêm ngày nhận và trả phòng
func (b *BookingBuilder) WithStay(checkIn, checkOut datatypes.Date) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

// WithStatus thêm trạng thái, rỗng thì giữ mặc định active
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	if b.booking.Status == "" {
		b.booking.Status = constants.BookingStatusActive
	}
	return b.booking
}
