package property

import (
	"context"

	"bookingservice/internal/domain"
)

// PropertyRepository is the store surface the directory needs.
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}
