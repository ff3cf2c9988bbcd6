package dto

import (
	"hostel/models"
)

// BookingRequest là body cho tạo mới và cập nhật booking.
// Ngày ở dạng YYYY-MM-DD, status rỗng nghĩa là active.
type BookingRequest struct {
	GuestID  uint   `json:"guest_id" binding:"required"`
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Status   string `json:"status"`
}

type BookingResponse struct {
	ID       uint   `json:"id"`
	GuestID  uint   `json:"guest_id"`
	RoomID   uint   `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func NewBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		GuestID:  b.GuestID,
		RoomID:   b.RoomID,
		CheckIn:  FormatDate(b.CheckIn),
		CheckOut: FormatDate(b.CheckOut),
		Status:   b.Status,
	}
}

// EnrichedBooking là booking đã join với guest và room, làm phẳng thành một bản ghi.
// status là trạng thái booking, trạng thái phòng nằm ở room_status.
type EnrichedBooking struct {
	ID         uint    `json:"id"`
	GuestID    uint    `json:"guest_id"`
	RoomID     uint    `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Status     string  `json:"status"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Country    string  `json:"country"`
	DocumentID string  `json:"document_id"`
	TotalStays int     `json:"total_stays"`
	LastVisit  *string `json:"last_visit"`
	Number     string  `json:"number"`
	Type       string  `json:"type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	RoomStatus string  `json:"room_status"`
}

// NewEnrichedBooking yêu cầu b.Guest và b.Room đã được preload
func NewEnrichedBooking(b models.Booking) EnrichedBooking {
	return EnrichedBooking{
		ID:         b.ID,
		GuestID:    b.GuestID,
		RoomID:     b.RoomID,
		CheckIn:    FormatDate(b.CheckIn),
		CheckOut:   FormatDate(b.CheckOut),
		Status:     b.Status,
		FirstName:  b.Guest.FirstName,
		LastName:   b.Guest.LastName,
		Email:      b.Guest.Email,
		Phone:      b.Guest.Phone,
		Country:    b.Guest.Country,
		DocumentID: b.Guest.DocumentID,
		TotalStays: b.Guest.TotalStays,
		LastVisit:  FormatDatePtr(b.Guest.LastVisit),
		Number:     b.Room.Number,
		Type:       b.Room.Type,
		Capacity:   b.Room.Capacity,
		Price:      b.Room.Price,
		RoomStatus: b.Room.Status,
	}
}

func NewEnrichedList(bookings []models.Booking) []EnrichedBooking {
	res := make([]EnrichedBooking, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, NewEnrichedBooking(b))
	}
	return res
}

// TodayStats là số lượt check-in/check-out của ngày hiện tại
type TodayStats struct {
	Checkins  int64 `json:"checkins"`
	Checkouts int64 `json:"checkouts"`
}
