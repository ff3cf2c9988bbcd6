package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrGuestNotFound(), http.StatusNotFound},
		{ErrRoomNotAvailable(), http.StatusBadRequest},
		{Validation("bad"), http.StatusBadRequest},
		{ErrRoomExists(nil), http.StatusConflict},
		{Inconsistent("room missing", nil), http.StatusInternalServerError},
		{DB("query", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrBookingNotFound())

	assert.True(t, IsAppError(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeNotFound))
	assert.Equal(t, "Booking not found", GetAppError(wrapped).Message)
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("disk full")
	err := DB("create booking", cause)

	assert.Equal(t, "[DB_ERROR] create booking: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[NOT_FOUND] Room not found", ErrRoomNotFound().Error())
}
