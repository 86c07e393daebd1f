// Package property resolves property references to their canonical stored
// records. It never creates properties; a reference either resolves or the
// operation fails fast.
package property

import (
	"context"
	"errors"

	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/apperr"
	"bookingservice/internal/repository"
)

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

// GetByID resolves a reference. Caller-supplied fields other than the id
// are discarded: the stored record wins.
func (s *Service) GetByID(ctx context.Context, id *int64) (*domain.Property, error) {
	if id == nil {
		return nil, apperr.Validation("Property Id is required")
	}

	p, err := s.properties.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Property id: %d not found", *id)
		}
		return nil, err
	}
	return p, nil
}
