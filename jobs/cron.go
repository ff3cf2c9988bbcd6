package jobs

import (
	"context"
	"time"

	"hostel/dto"
	"hostel/models"
	"hostel/services/logger"

	"github.com/robfig/cron/v3"
)

// DailyReportSpec chạy lúc 0h mỗi ngày theo múi giờ của cron
const DailyReportSpec = "0 0 * * *"

type TodayStatsProvider interface {
	TodayStats(ctx context.Context) (*dto.TodayStats, error)
}

type AvailableRoomsLister interface {
	ListAvailableRooms(ctx context.Context) ([]models.Room, error)
}

// DailyReport log số lượt nhận/trả phòng trong ngày và nạp lại cache phòng trống
type DailyReport struct {
	Bookings TodayStatsProvider
	Rooms    AvailableRoomsLister
	Logger   logger.Logger
	Timeout  time.Duration
}

func (r DailyReport) Run() {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stats, err := r.Bookings.TodayStats(ctx)
	if err != nil {
		r.Logger.Error("daily report: today stats: %v", err)
		return
	}
	rooms, err := r.Rooms.ListAvailableRooms(ctx)
	if err != nil {
		r.Logger.Error("daily report: available rooms: %v", err)
		return
	}
	r.Logger.Info("daily report: %d check-ins, %d check-outs, %d rooms available",
		stats.Checkins, stats.Checkouts, len(rooms))
}

// InitCronJobs đăng ký các job định kỳ và khởi động scheduler
func InitCronJobs(c *cron.Cron, report DailyReport) error {
	if _, err := c.AddJob(DailyReportSpec, report); err != nil {
		return err
	}
	c.Start()
	report.Logger.Info("Cron jobs initialized successfully")
	return nil
}
