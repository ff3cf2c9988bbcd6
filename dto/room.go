package dto

import (
	"hostel/constants"
	"hostel/models"
)

// RoomRequest là body cho tạo mới và cập nhật room
type RoomRequest struct {
	Number   string   `json:"number" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Capacity int      `json:"capacity" binding:"required,gt=0"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Status   string   `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// Apply ghi đè toàn bộ trường có thể sửa của room, status rỗng nghĩa là available
func (r RoomRequest) Apply(room *models.Room) {
	room.Number = r.Number
	room.Type = r.Type
	room.Capacity = r.Capacity
	if r.Price != nil {
		room.Price = *r.Price
	}
	room.Status = r.Status
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
}

type RoomResponse struct {
	ID       uint    `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

func NewRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		Number:   r.Number,
		Type:     r.Type,
		Capacity: r.Capacity,
		Price:    r.Price,
		Status:   r.Status,
	}
}

func NewRoomList(rooms []models.Room) []RoomResponse {
	res := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		res = append(res, NewRoomResponse(r))
	}
	return res
}

// RoomStats là số liệu tổng hợp theo trạng thái phòng
type RoomStats struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
}
