package services

import (
	"context"
	"testing"

	"hostel/constants"
	apperrors "hostel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertStatsConsistent(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	stats, err := env.rooms.RoomStats(ctx)
	require.NoError(t, err)
	rooms, err := env.rooms.ListRooms(ctx)
	require.NoError(t, err)

	assert.Equal(t, stats.Available+stats.Occupied+stats.Maintenance, stats.Total)
	assert.EqualValues(t, len(rooms), stats.Total)
}

func TestCreateRoomDefaultsToAvailable(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	r := env.mustRoom(t, "101", "")
	assert.Equal(t, constants.RoomStatusAvailable, r.Status)
	assert.Equal(t, 25.5, r.Price)

	got, err := env.rooms.GetRoom(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "101", got.Number)
	assert.Equal(t, 4, got.Capacity)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	env.mustRoom(t, "101", "")
	_, err := env.rooms.CreateRoom(context.Background(), roomRequest("101", ""))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
}

func TestCreateRoomValidation(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	req := roomRequest("101", "cleaning")
	_, err := env.rooms.CreateRoom(ctx, req)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	req = roomRequest("101", "")
	req.Capacity = 0
	_, err = env.rooms.CreateRoom(ctx, req)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	req = roomRequest("101", "")
	negative := -1.0
	req.Price = &negative
	_, err = env.rooms.CreateRoom(ctx, req)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	req = roomRequest("101", "")
	req.Price = nil
	_, err = env.rooms.CreateRoom(ctx, req)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestZeroPriceIsAllowed(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	req := roomRequest("staff", "")
	zero := 0.0
	req.Price = &zero
	r, err := env.rooms.CreateRoom(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, r.Price)
}

func TestUpdateRoom(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	r := env.mustRoom(t, "101", "")
	env.mustRoom(t, "102", "")

	updated, err := env.rooms.UpdateRoom(ctx, r.ID, roomRequest("101A", constants.RoomStatusMaintenance))
	require.NoError(t, err)
	assert.Equal(t, "101A", updated.Number)
	assert.Equal(t, constants.RoomStatusMaintenance, updated.Status)

	_, err = env.rooms.UpdateRoom(ctx, r.ID, roomRequest("102", ""))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

	_, err = env.rooms.UpdateRoom(ctx, 999, roomRequest("999", ""))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestListAvailableRooms(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	a := env.mustRoom(t, "101", "")
	env.mustRoom(t, "102", constants.RoomStatusMaintenance)
	env.mustRoom(t, "103", constants.RoomStatusOccupied)

	rooms, err := env.rooms.ListAvailableRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, a.ID, rooms[0].ID)
}

func TestRoomStats(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	stats, err := env.rooms.RoomStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)

	env.mustRoom(t, "101", "")
	env.mustRoom(t, "102", "")
	env.mustRoom(t, "103", constants.RoomStatusMaintenance)
	env.mustRoom(t, "104", constants.RoomStatusOccupied)

	stats, err = env.rooms.RoomStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Total)
	assert.EqualValues(t, 2, stats.Available)
	assert.EqualValues(t, 1, stats.Occupied)
	assert.EqualValues(t, 1, stats.Maintenance)
	assertStatsConsistent(t, env)
}

func TestRoomStatsStayConsistent(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	assertStatsConsistent(t, env)

	g := env.mustGuest(t, 1)
	r1 := env.mustRoom(t, "101", "")
	assertStatsConsistent(t, env)
	r2 := env.mustRoom(t, "102", "")
	assertStatsConsistent(t, env)

	b, err := env.bookings.CreateBooking(ctx, bookingRequest(g.ID, r1.ID, "2024-01-01", "2024-01-03"))
	require.NoError(t, err)
	assertStatsConsistent(t, env)

	_, err = env.rooms.UpdateRoom(ctx, r2.ID, roomRequest("102", constants.RoomStatusMaintenance))
	require.NoError(t, err)
	assertStatsConsistent(t, env)

	require.NoError(t, env.bookings.DeleteBooking(ctx, b.ID))
	assertStatsConsistent(t, env)

	require.NoError(t, env.rooms.DeleteRoom(ctx, r2.ID))
	assertStatsConsistent(t, env)
}

func TestDeleteRoom(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	r := env.mustRoom(t, "101", "")
	require.NoError(t, env.rooms.DeleteRoom(ctx, r.ID))

	_, err := env.rooms.GetRoom(ctx, r.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))

	err = env.rooms.DeleteRoom(ctx, r.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestDeleteRoomWithBookings(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	g := env.mustGuest(t, 1)
	r := env.mustRoom(t, "101", "")
	_, err := env.bookings.CreateBooking(ctx, bookingRequest(g.ID, r.ID, "2024-01-01", "2024-01-02"))
	require.NoError(t, err)

	err = env.rooms.DeleteRoom(ctx, r.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
}
