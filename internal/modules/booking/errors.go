package booking

import (
	"bookingservice/internal/pkg/apperr"
	"bookingservice/internal/pkg/datetime"
)

var (
	ErrIDRequired     = apperr.Validation("Booking Id is required")
	ErrCreateCanceled = apperr.Validation("Cannot create a canceled booking")
	ErrDateFormat     = apperr.Validation("Invalid date format, correct format is %s", datetime.WireFormat)
	ErrDateOrder      = apperr.Validation("Booking endDate must be after startDate")
	ErrAlreadyBooked  = apperr.Conflict("Property is already booked for this period")
	ErrBlocked        = apperr.Conflict("Property is blocked for this period")
)

func errNotFound(id int64) *apperr.Error {
	return apperr.NotFound("Booking id: %d not found", id)
}
