package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"hostel/constants"
	"hostel/dto"
	"hostel/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

var (
	// validate dùng lại tag `binding` của gin để kiểm tra cả khi service được gọi trực tiếp
	validate   = newValidate()
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JSONFieldName)
	return v
}

// JSONFieldName đặt tên field trong thông báo lỗi theo tag json
func JSONFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateGuest validate thông tin guest
func ValidateGuest(req *dto.GuestRequest) error {
	if err := validate.Struct(req); err != nil {
		return FromBindingError(err)
	}
	if !emailRegex.MatchString(req.Email) {
		return errors.Validation("Invalid email")
	}
	return nil
}

// ValidateRoom validate thông tin room
func ValidateRoom(req *dto.RoomRequest) error {
	if err := validate.Struct(req); err != nil {
		return FromBindingError(err)
	}
	return nil
}

// ValidateBooking validate booking và trả về ngày nhận/trả phòng đã parse
func ValidateBooking(req *dto.BookingRequest) (checkIn, checkOut datatypes.Date, err error) {
	if err = validate.Struct(req); err != nil {
		return checkIn, checkOut, FromBindingError(err)
	}
	if checkIn, err = ParseDate("check_in", req.CheckIn); err != nil {
		return checkIn, checkOut, err
	}
	if checkOut, err = ParseDate("check_out", req.CheckOut); err != nil {
		return checkIn, checkOut, err
	}
	if time.Time(checkOut).Before(time.Time(checkIn)) {
		return checkIn, checkOut, errors.Validation("check_out must not be before check_in")
	}
	return checkIn, checkOut, nil
}

// ParseDate parse ngày dạng YYYY-MM-DD thành datatypes.Date ở UTC
func ParseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return datatypes.Date{}, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field), err)
	}
	return datatypes.Date(t), nil
}

// FromBindingError chuyển lỗi validate (từ gin hoặc validator) thành AppError
func FromBindingError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request body", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.NewAppError(errors.ErrCodeValidation, strings.Join(msgs, "; "), err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}
