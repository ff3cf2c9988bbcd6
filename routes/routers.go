package routes

import (
	"net/http"

	"hostel/controllers"
	"hostel/middleware"
	"hostel/services"
	"hostel/services/logger"

	"github.com/gin-gonic/gin"
)

// Deps gom các service mà route table cần
type Deps struct {
	Guests   *services.GuestService
	Rooms    *services.RoomService
	Bookings *services.BookingService
	Logger   logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	guestController := controllers.NewGuestController(deps.Guests, deps.Logger)
	roomController := controllers.NewRoomController(deps.Rooms, deps.Logger)
	bookingController := controllers.NewBookingController(deps.Bookings, deps.Logger)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	api := router.Group("/api")
	api.Use(middleware.RequestID(), middleware.AccessLog(deps.Logger))

	api.GET("/guests", guestController.GetGuests)
	api.GET("/guests/:id", guestController.GetGuest)
	api.POST("/guests", guestController.CreateGuest)
	api.PUT("/guests/:id", guestController.UpdateGuest)
	api.DELETE("/guests/:id", guestController.DeleteGuest)

	api.GET("/bookings", bookingController.GetBookings)
	api.GET("/bookings/today", bookingController.GetTodayStats)
	api.GET("/bookings/:id", bookingController.GetBooking)
	api.POST("/bookings", bookingController.CreateBooking)
	api.PUT("/bookings/:id", bookingController.UpdateBooking)
	api.DELETE("/bookings/:id", bookingController.DeleteBooking)

	api.GET("/rooms", roomController.GetRooms)
	api.GET("/rooms/stats", roomController.GetRoomStats)
	api.GET("/rooms/available", roomController.GetAvailableRooms)
	api.GET("/rooms/:id", roomController.GetRoom)
	api.POST("/rooms", roomController.CreateRoom)
	api.PUT("/rooms/:id", roomController.UpdateRoom)
	api.DELETE("/rooms/:id", roomController.DeleteRoom)
}
