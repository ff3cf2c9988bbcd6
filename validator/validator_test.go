package validator

import (
	"testing"
	"time"

	"hostel/dto"
	"hostel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() dto.GuestRequest {
	return dto.GuestRequest{
		FirstName:  "Ana",
		LastName:   "Silva",
		Email:      "ana@example.com",
		Phone:      "+351900000000",
		Country:    "PT",
		DocumentID: "P123",
	}
}

func TestValidateGuest(t *testing.T) {
	req := validGuest()
	assert.NoError(t, ValidateGuest(&req))

	req.Email = "ana@"
	err := ValidateGuest(&req)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	req = validGuest()
	req.Phone = ""
	req.Country = ""
	err = ValidateGuest(&req)
	require.Error(t, err)
	assert.Equal(t, "phone is required; country is required", errors.GetAppError(err).Message)
}

func TestValidateRoom(t *testing.T) {
	price := 20.0
	req := dto.RoomRequest{Number: "101", Type: "dorm", Capacity: 6, Price: &price}
	assert.NoError(t, ValidateRoom(&req))

	req.Status = "closed"
	err := ValidateRoom(&req)
	require.Error(t, err)
	assert.Equal(t, "status must be one of: available occupied maintenance", errors.GetAppError(err).Message)

	req.Status = ""
	req.Capacity = -1
	err = ValidateRoom(&req)
	require.Error(t, err)
	assert.Equal(t, "capacity must be greater than 0", errors.GetAppError(err).Message)
}

func TestValidateBooking(t *testing.T) {
	req := dto.BookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-05"}
	in, out, err := ValidateBooking(&req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time(in))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), time.Time(out))

	// Nhận và trả trong cùng ngày là hợp lệ
	req.CheckOut = "2024-01-01"
	_, _, err = ValidateBooking(&req)
	assert.NoError(t, err)

	req.CheckOut = "2023-12-31"
	_, _, err = ValidateBooking(&req)
	require.Error(t, err)
	assert.Equal(t, "check_out must not be before check_in", errors.GetAppError(err).Message)

	req.CheckIn = "2024-13-01"
	_, _, err = ValidateBooking(&req)
	require.Error(t, err)
	assert.Equal(t, "check_in must be a date in YYYY-MM-DD format", errors.GetAppError(err).Message)

	req = dto.BookingRequest{CheckIn: "2024-01-01", CheckOut: "2024-01-02"}
	_, _, err = ValidateBooking(&req)
	require.Error(t, err)
	assert.Equal(t, "guest_id is required; room_id is required", errors.GetAppError(err).Message)
}

func TestFromBindingErrorOnDecodeError(t *testing.T) {
	err := FromBindingError(assert.AnError)
	assert.Equal(t, "Invalid request body", errors.GetAppError(err).Message)
}
