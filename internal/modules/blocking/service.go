// Package blocking implements host unavailability windows. Creating or
// updating a blocking force-cancels every active booking caught inside the
// window, in the same transaction that stores the blocking.
package blocking

import (
	"context"
	"errors"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"
	"bookingservice/internal/repository"
)

type Service struct {
	blockings  BlockingRepository
	bookings   BookingCanceler
	properties PropertyDirectory
	tx         TxRunner
}

func NewService(blockings BlockingRepository, bookings BookingCanceler, properties PropertyDirectory, tx TxRunner) *Service {
	return &Service{
		blockings:  blockings,
		bookings:   bookings,
		properties: properties,
		tx:         tx,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Blocking, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}

	b, err := s.blockings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound(id)
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Blocking, error) {
	return s.blockings.GetAll(ctx)
}

// Create stores a new blocking and cancels colliding active bookings.
// Validation, cancellation and the insert are one atomic unit.
func (s *Service) Create(ctx context.Context, req BlockingPayload) (*domain.Blocking, error) {
	var created *domain.Blocking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		property, err := s.properties.GetByID(ctx, req.Property.ID)
		if err != nil {
			return err
		}

		rng, err := validateRange(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		if err := s.checkBlockingCollision(ctx, 0, property.ID, rng); err != nil {
			return err
		}
		if err := s.cancelOverlappingBookings(ctx, property.ID, rng); err != nil {
			return err
		}

		b := &domain.Blocking{
			Name:       req.Name,
			StartDate:  rng.Start,
			EndDate:    rng.End,
			PropertyID: property.ID,
			Property:   property,
		}
		if err := s.blockings.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the window in place. The cancellation side effect runs
// against the replacement range, same as on create.
func (s *Service) Update(ctx context.Context, id int64, req BlockingPayload) (*domain.Blocking, error) {
	var updated *domain.Blocking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := s.blockings.GetByID(ctx, id)
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

		if err := s.checkBlockingCollision(ctx, id, property.ID, rng); err != nil {
			return err
		}
		if err := s.cancelOverlappingBookings(ctx, property.ID, rng); err != nil {
			return err
		}

		existing.Name = req.Name
		existing.StartDate = rng.Start
		existing.EndDate = rng.End
		existing.PropertyID = property.ID
		existing.Property = property

		if err := s.blockings.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the blocking. Bookings it auto-canceled stay canceled.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.blockings.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errNotFound(id)
			}
			return err
		}
		return s.blockings.Delete(ctx, id)
	})
}

// checkBlockingCollision rejects when another blocking of the property
// overlaps the window. excludeID filters the record being updated.
func (s *Service) checkBlockingCollision(ctx context.Context, excludeID, propertyID int64, rng datetime.Range) error {
	matches, err := s.blockings.FindOverlapping(ctx, propertyID, rng)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.ID != excludeID {
			return ErrAlreadyBlocked
		}
	}
	return nil
}

// cancelOverlappingBookings sets isCanceled on every active booking the
// window intersects. One-directional: deleting the blocking later does not
// reinstate them.
func (s *Service) cancelOverlappingBookings(ctx context.Context, propertyID int64, rng datetime.Range) error {
	matches, err := s.bookings.FindOverlapping(ctx, propertyID, rng, true)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return s.bookings.MarkCanceled(ctx, ids)
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
