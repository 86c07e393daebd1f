package blocking

import (
	"context"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
)

// BlockingRepository defines the store operations the blocking engine needs.
type BlockingRepository interface {
	Create(ctx context.Context, b *domain.Blocking) error
	Update(ctx context.Context, b *domain.Blocking) error
	GetByID(ctx context.Context, id int64) (*domain.Blocking, error)
	GetAll(ctx context.Context) ([]domain.Blocking, error)
	Delete(ctx context.Context, id int64) error
	FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range) ([]domain.Blocking, error)
}

// BookingCanceler is the slice of the booking store used for the
// cancellation side effect.
type BookingCanceler interface {
	FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range, activeOnly bool) ([]domain.Booking, error)
	MarkCanceled(ctx context.Context, ids []int64) error
}

// PropertyDirectory resolves property references.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id *int64) (*domain.Property, error)
}

// TxRunner executes a function inside one atomic store transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
