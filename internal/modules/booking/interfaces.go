package booking

import (
	"context"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
)

// BookingRepository defines the store operations the booking engine needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range, activeOnly bool) ([]domain.Booking, error)
}

// BlockingFinder is the read-only view of the blocking store used for
// collision checks.
type BlockingFinder interface {
	FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range) ([]domain.Blocking, error)
}

// PropertyDirectory resolves property references.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id *int64) (*domain.Property, error)
}

// TxRunner executes a function inside one atomic store transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
