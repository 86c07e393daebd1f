// Package booking implements the guest reservation engine: create and
// update reject any range that collides with another active booking or
// with a blocking on the same property.
package booking

import (
	"context"
	"errors"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
	"bookingservice/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings   BookingRepository
	blockings  BlockingFinder
	properties PropertyDirectory
	tx         TxRunner
}

func NewService(bookings BookingRepository, blockings BlockingFinder, properties PropertyDirectory, tx TxRunner) *Service {
	return &Service{
		bookings:   bookings,
		blockings:  blockings,
		properties: properties,
		tx:         tx,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound(id)
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

// Create stores a new booking once the property resolves, the range is
// chronological, and nothing already booked or blocked collides with it.
func (s *Service) Create(ctx context.Context, req BookingPayload) (*domain.Booking, error) {
	if req.IsCanceled {
		return nil, ErrCreateCanceled
	}

	var created *domain.Booking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		property, err := s.properties.GetByID(ctx, req.Property.ID)
		if err != nil {
			return err
		}

		rng, err := validateRange(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		b := &domain.Booking{
			Name:        req.Name,
			Description: req.Description,
			StartDate:   rng.Start,
			EndDate:     rng.End,
			PropertyID:  property.ID,
			Property:    property,
		}

		if err := s.checkBookingCollision(ctx, 0, property.ID, rng); err != nil {
			return err
		}
		if err := s.checkBlockingCollision(ctx, property.ID, rng, false); err != nil {
			return err
		}

		if err := s.bookings.Create(ctx, b); err != nil {
			return asBookingConflict(err)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces every mutable field of an existing booking. The record
// keeps its own slot: overlap matches with its own id are ignored. A
// booking being canceled here is exempt from the blocking check.
func (s *Service) Update(ctx context.Context, id int64, req BookingPayload) (*domain.Booking, error) {
	var updated *domain.Booking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := s.bookings.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errNotFound(id)
			}
			return err
		}

		property, err := s.properties.GetByID(ctx, req.Property.ID)
		if err != nil {
			return err
		}

		rng, err := validateRange(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		if err := s.checkBookingCollision(ctx, id, property.ID, rng); err != nil {
			return err
		}
		if err := s.checkBlockingCollision(ctx, property.ID, rng, req.IsCanceled); err != nil {
			return err
		}

		existing.Name = req.Name
		existing.Description = req.Description
		existing.IsCanceled = req.IsCanceled
		existing.StartDate = rng.Start
		existing.EndDate = rng.End
		existing.PropertyID = property.ID
		existing.Property = property

		if err := s.bookings.Update(ctx, existing); err != nil {
			return asBookingConflict(err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.bookings.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errNotFound(id)
			}
			return err
		}
		return s.bookings.Delete(ctx, id)
	})
}

// checkBookingCollision rejects when another active booking of the same
// property overlaps the range. excludeID filters the record being updated
// out of the matches.
func (s *Service) checkBookingCollision(ctx context.Context, excludeID, propertyID int64, rng datetime.Range) error {
	matches, err := s.bookings.FindOverlapping(ctx, propertyID, rng, true)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.ID != excludeID {
			return ErrAlreadyBooked
		}
	}
	return nil
}

// checkBlockingCollision rejects when any blocking of the property overlaps
// the range. A booking that is itself canceled collides with nothing.
func (s *Service) checkBlockingCollision(ctx context.Context, propertyID int64, rng datetime.Range, canceled bool) error {
	if canceled {
		return nil
	}
	matches, err := s.blockings.FindOverlapping(ctx, propertyID, rng)
	if err != nil {
		return err
	}
	if len(matches) > 0 {
		return ErrBlocked
	}
	return nil
}

func validateRange(start, end string) (datetime.Range, error) {
	rng, err := datetime.NewRange(start, end)
	if err != nil {
		return datetime.Range{}, ErrDateFormat
	}
	if !rng.Valid() {
		return datetime.Range{}, ErrDateOrder
	}
	return rng, nil
}

// asBookingConflict recognizes the Postgres idx_no_overbooking exclusion
// constraint firing under a write race and reports it as the standard
// booking conflict instead of a server fault.
func asBookingConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_overbooking" {
		return ErrAlreadyBooked.Wrap(err)
	}
	return err
}
