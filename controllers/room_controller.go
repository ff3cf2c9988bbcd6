package controllers

import (
	"hostel/dto"
	"hostel/response"
	"hostel/services"
	"hostel/services/logger"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
	logger  logger.Logger
}

func NewRoomController(service *services.RoomService, log logger.Logger) RoomController {
	return RoomController{
		service: service,
		logger:  log,
	}
}

func (r RoomController) GetRooms(c *gin.Context) {
	rooms, err := r.service.ListRooms(c.Request.Context())
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, dto.NewRoomList(rooms))
}

// GetAvailableRooms chỉ trả về phòng đang available
func (r RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := r.service.ListAvailableRooms(c.Request.Context())
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, dto.NewRoomList(rooms))
}

func (r RoomController) GetRoomStats(c *gin.Context) {
	stats, err := r.service.RoomStats(c.Request.Context())
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, stats)
}

func (r RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := r.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, dto.NewRoomResponse(*room))
}

func (r RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if !bindJSON(c, r.logger, &req) {
		return
	}
	room, err := r.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, dto.NewRoomResponse(*room))
}

func (r RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RoomRequest
	if !bindJSON(c, r.logger, &req) {
		return
	}
	room, err := r.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Success(c, dto.NewRoomResponse(*room))
}

func (r RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.service.DeleteRoom(c.Request.Context(), id); err != nil {
		fail(c, r.logger, err)
		return
	}
	response.Message(c, "Room deleted successfully")
}
