package main

import (
	"fmt"
	"log"

	"hostel/config"
	"hostel/jobs"
	"hostel/routes"
	"hostel/services"
	"hostel/services/logger"
	"hostel/services/notification"

	"github.com/robfig/cron/v3"
)

func newLogger(cfg *config.Config) logger.Logger {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logger.InfoLevel
	}
	if cfg.Env == "dev" {
		return logger.NewDefaultLogger(level)
	}
	return logger.NewJSONLogger(level)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run khởi tạo các thành phần và chạy server cho tới khi có lỗi
func run() error {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	appLogger := newLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	db, err := config.ConnectDB(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	rdb := config.ConnectRedis(cfg.Redis, appLogger)

	router, m := config.InitApp(cfg, appLogger)
	config.InitWebSocket(router, m, appLogger)

	roomCache := services.NewRoomCache(rdb, appLogger.With("component", "room_cache"))

	guestService := services.NewGuestService(services.GuestServiceOptions{
		DB:     db,
		Logger: appLogger.With("service", "guest"),
	})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     db,
		Logger: appLogger.With("service", "room"),
		Cache:  roomCache,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:       db,
		Logger:   appLogger.With("service", "booking"),
		Cache:    roomCache,
		Notifier: notification.NewMelodyService(m),
		Location: loc,
	})

	c := cron.New(cron.WithLocation(loc))
	defer c.Stop()
	if err := jobs.InitCronJobs(c, jobs.DailyReport{
		Bookings: bookingService,
		Rooms:    roomService,
		Logger:   appLogger.With("job", "daily_report"),
	}); err != nil {
		return fmt.Errorf("failed to initialize cron jobs: %w", err)
	}

	routes.SetupRoutes(router, routes.Deps{
		Guests:   guestService,
		Rooms:    roomService,
		Bookings: bookingService,
		Logger:   appLogger,
	})

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
