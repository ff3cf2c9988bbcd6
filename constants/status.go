package constants

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Booking status
const (
	BookingStatusActive = "active"
)

// RoomStatuses liệt kê mọi trạng thái hợp lệ của phòng
var RoomStatuses = []string{RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance}

// DateLayout là định dạng ngày trên API
const DateLayout = "2006-01-02"
