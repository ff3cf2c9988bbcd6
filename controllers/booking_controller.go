package controllers

import (
	"hostel/dto"
	"hostel/response"
	"hostel/services"
	"hostel/services/logger"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
	logger  logger.Logger
}

func NewBookingController(service *services.BookingService, log logger.Logger) BookingController {
	return BookingController{
		service: service,
		logger:  log,
	}
}

// GetBookings trả về booking đã join guest và room
func (b BookingController) GetBookings(c *gin.Context) {
	bookings, err := b.service.ListBookings(c.Request.Context())
	if err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Success(c, dto.NewEnrichedList(bookings))
}

func (b BookingController) GetTodayStats(c *gin.Context) {
	stats, err := b.service.TodayStats(c.Request.Context())
	if err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Success(c, stats)
}

func (b BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := b.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Success(c, dto.NewEnrichedBooking(*booking))
}

func (b BookingController) CreateBooking(c *gin.Context) {
	var req dto.BookingRequest
	if !bindJSON(c, b.logger, &req) {
		return
	}
	booking, err := b.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Success(c, dto.NewBookingResponse(*booking))
}

func (b BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BookingRequest
	if !bindJSON(c, b.logger, &req) {
		return
	}
	booking, err := b.service.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Success(c, dto.NewBookingResponse(*booking))
}

// DeleteBooking xóa booking và trả phòng về available
func (b BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := b.service.DeleteBooking(c.Request.Context(), id); err != nil {
		fail(c, b.logger, err)
		return
	}
	response.Message(c, "Booking deleted successfully")
}
