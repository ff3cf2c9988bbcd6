package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

const EventRoomStatus = "room.status"

type Service interface {
	SendMessage(message []byte) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message []byte) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast(message)
}

// RoomStatusMessage là payload gửi qua websocket khi trạng thái phòng đổi
type RoomStatusMessage struct {
	Event  string `json:"event"`
	RoomID uint   `json:"room_id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

type MessageBuilder struct {
	roomID uint
	number string
	status string
}

func NewMessageBuilder(roomID uint, number, status string) *MessageBuilder {
	return &MessageBuilder{
		roomID: roomID,
		number: number,
		status: status,
	}
}

func (b *MessageBuilder) Build() ([]byte, error) {
	return json.Marshal(RoomStatusMessage{
		Event:  EventRoomStatus,
		RoomID: b.roomID,
		Number: b.number,
		Status: b.status,
	})
}

// Recorder lưu lại message thay vì broadcast, dùng khi không có websocket và trong test
type Recorder struct {
	Messages [][]byte
}

func (r *Recorder) SendMessage(message []byte) error {
	r.Messages = append(r.Messages, message)
	return nil
}
