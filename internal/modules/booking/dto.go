package booking

import (
	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
)

// PropertyPayload is the reference a caller sends. Only the id matters;
// every other field is discarded during resolution.
type PropertyPayload struct {
	ID   *int64 `json:"id"`
	Name string `json:"name,omitempty"`
}

// BookingPayload is the create/update request body.
type BookingPayload struct {
	Name        string           `json:"name" binding:"required,min=2,max=50"`
	Description string           `json:"description" binding:"omitempty,min=2,max=100"`
	StartDate   string           `json:"startDate" binding:"required"`
	EndDate     string           `json:"endDate" binding:"required"`
	IsCanceled  bool             `json:"isCanceled"`
	Property    *PropertyPayload `json:"property" binding:"required"`
}

type PropertyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	IsCanceled  bool             `json:"isCanceled"`
	Property    PropertyResponse `json:"property"`
}

func toResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		StartDate:   datetime.Format(b.StartDate),
		EndDate:     datetime.Format(b.EndDate),
		IsCanceled:  b.IsCanceled,
	}
	if b.Property != nil {
		resp.Property = PropertyResponse{ID: b.Property.ID, Name: b.Property.Name}
	} else {
		resp.Property = PropertyResponse{ID: b.PropertyID}
	}
	return resp
}

func toResponseList(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
