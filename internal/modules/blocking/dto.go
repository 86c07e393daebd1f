package blocking

import (
	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
)

type PropertyPayload struct {
	ID   *int64 `json:"id"`
	Name string `json:"name,omitempty"`
}

// BlockingPayload is the create/update request body. The name is free text.
type BlockingPayload struct {
	Name      string           `json:"name"`
	StartDate string           `json:"startDate" binding:"required"`
	EndDate   string           `json:"endDate" binding:"required"`
	Property  *PropertyPayload `json:"property" binding:"required"`
}

type PropertyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BlockingResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Property  PropertyResponse `json:"property"`
}

func toResponse(b *domain.Blocking) BlockingResponse {
	resp := BlockingResponse{
		ID:        b.ID,
		Name:      b.Name,
		StartDate: datetime.Format(b.StartDate),
		EndDate:   datetime.Format(b.EndDate),
	}
	if b.Property != nil {
		resp.Property = PropertyResponse{ID: b.Property.ID, Name: b.Property.Name}
	} else {
		resp.Property = PropertyResponse{ID: b.PropertyID}
	}
	return resp
}

func toResponseList(bs []domain.Blocking) []BlockingResponse {
	out := make([]BlockingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
