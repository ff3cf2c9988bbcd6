package controllers

import (
	"hostel/dto"
	"hostel/response"
	"hostel/services"
	"hostel/services/logger"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	service *services.GuestService
	logger  logger.Logger
}

func NewGuestController(service *services.GuestService, log logger.Logger) GuestController {
	return GuestController{
		service: service,
		logger:  log,
	}
}

func (g GuestController) GetGuests(c *gin.Context) {
	guests, err := g.service.ListGuests(c.Request.Context())
	if err != nil {
		fail(c, g.logger, err)
		return
	}
	response.Success(c, dto.NewGuestList(guests))
}

func (g GuestController) GetGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	guest, err := g.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		fail(c, g.logger, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(*guest))
}

func (g GuestController) CreateGuest(c *gin.Context) {
	var req dto.GuestRequest
	if !bindJSON(c, g.logger, &req) {
		return
	}
	guest, err := g.service.CreateGuest(c.Request.Context(), req)
	if err != nil {
		fail(c, g.logger, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(*guest))
}

func (g GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.GuestRequest
	if !bindJSON(c, g.logger, &req) {
		return
	}
	guest, err := g.service.UpdateGuest(c.Request.Context(), id, req)
	if err != nil {
		fail(c, g.logger, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(*guest))
}

func (g GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := g.service.DeleteGuest(c.Request.Context(), id); err != nil {
		fail(c, g.logger, err)
		return
	}
	response.Message(c, "Guest deleted successfully")
}
