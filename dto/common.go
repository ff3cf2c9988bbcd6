package dto

import (
	"time"

	"hostel/constants"

	"gorm.io/datatypes"
)

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(constants.DateLayout)
}

func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
