package repository

import (
	"context"
	"time"

	"bookingservice/internal/database"
	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Name        string         `gorm:"column:name"`
	Description *string        `gorm:"column:description"`
	StartDate   time.Time      `gorm:"column:start_date"`
	EndDate     time.Time      `gorm:"column:end_date"`
	IsCanceled  bool           `gorm:"column:is_canceled"`
	PropertyID  int64          `gorm:"column:property_id"`
	Property    *propertyModel `gorm:"foreignKey:PropertyID"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	b := &domain.Booking{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsCanceled:  m.IsCanceled,
		PropertyID:  m.PropertyID,
	}
	if m.Property != nil {
		b.Property = toDomainProperty(*m.Property)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	var description *string
	if b.Description != "" {
		v := b.Description
		description = &v
	}

	return bookingModel{
		ID:          b.ID,
		Name:        b.Name,
		Description: description,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		IsCanceled:  b.IsCanceled,
		PropertyID:  b.PropertyID,
	}
}

func (r *BookingRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	return nil
}

// Update persists every mutable column of an existing row.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.conn(ctx).Model(&bookingModel{ID: b.ID}).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"start_date":  m.StartDate,
			"end_date":    m.EndDate,
			"is_canceled": m.IsCanceled,
			"property_id": m.PropertyID,
		}).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.conn(ctx).Preload("Property").First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	if err := r.conn(ctx).Preload("Property").Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.conn(ctx).Delete(&bookingModel{}, id).Error
}

// FindOverlapping returns the bookings of a property whose range collides
// with the given one: the interval test plus the explicit identical-range
// clause. With activeOnly set, canceled bookings are transparent.
func (r *BookingRepository) FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range, activeOnly bool) ([]domain.Booking, error) {
	q := r.conn(ctx).
		Where("property_id = ?", propertyID).
		Where("(start_date < ? AND end_date > ?) OR (start_date = ? AND end_date = ?)",
			rng.End, rng.Start, rng.Start, rng.End)
	if activeOnly {
		q = q.Where("is_canceled = ?", false)
	}

	var ms []bookingModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// MarkCanceled flips is_canceled on the given bookings.
func (r *BookingRepository) MarkCanceled(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.conn(ctx).Model(&bookingModel{}).
		Where("id IN ?", ids).
		Update("is_canceled", true).Error
}
