package blocking

import (
	"bookingservice/internal/pkg/apperr"
	"bookingservice/internal/pkg/datetime"
)

var (
	ErrIDRequired     = apperr.Validation("Blocking Id is required")
	ErrDateFormat     = apperr.Validation("Invalid date format, correct format is %s", datetime.WireFormat)
	ErrDateOrder      = apperr.Validation("Blocking endDate must be after startDate")
	ErrAlreadyBlocked = apperr.Conflict("Property is already blocked for this period")
)

func errNotFound(id int64) *apperr.Error {
	return apperr.NotFound("Blocking id: %d not found", id)
}
