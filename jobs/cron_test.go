package jobs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hostel/dto"
	"hostel/models"
	"hostel/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookings struct {
	stats *dto.TodayStats
	err   error
}

func (f fakeBookings) TodayStats(context.Context) (*dto.TodayStats, error) {
	return f.stats, f.err
}

type fakeRooms struct {
	rooms []models.Room
}

func (f fakeRooms) ListAvailableRooms(context.Context) ([]models.Room, error) {
	return f.rooms, nil
}

func TestDailyReportLogsCounts(t *testing.T) {
	var buf bytes.Buffer
	report := DailyReport{
		Bookings: fakeBookings{stats: &dto.TodayStats{Checkins: 2, Checkouts: 1}},
		Rooms:    fakeRooms{rooms: []models.Room{{Number: "101"}}},
		Logger:   logger.NewLogger(&buf, logger.InfoLevel),
	}

	report.Run()

	assert.Contains(t, buf.String(), "2 check-ins, 1 check-outs, 1 rooms available")
}

func TestDailyReportLogsStatsError(t *testing.T) {
	var buf bytes.Buffer
	report := DailyReport{
		Bookings: fakeBookings{err: errors.New("db down")},
		Rooms:    fakeRooms{},
		Logger:   logger.NewLogger(&buf, logger.InfoLevel),
	}

	report.Run()

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "db down")
}

func TestInitCronJobsSchedulesReport(t *testing.T) {
	c := cron.New()
	defer c.Stop()

	err := InitCronJobs(c, DailyReport{
		Bookings: fakeBookings{stats: &dto.TodayStats{}},
		Rooms:    fakeRooms{},
		Logger:   logger.Nop(),
	})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
