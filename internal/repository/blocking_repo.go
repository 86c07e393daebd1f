package repository

import (
	"context"
	"time"

	"bookingservice/internal/database"
	"bookingservice/internal/domain"
	"bookingservice/internal/pkg/datetime"

	"gorm.io/gorm"
)

type BlockingRepository struct {
	db *gorm.DB
}

func NewBlockingRepository(db *gorm.DB) *BlockingRepository {
	return &BlockingRepository{db: db}
}

type blockingModel struct {
	ID         int64          `gorm:"column:id;primaryKey"`
	Name       string         `gorm:"column:name"`
	StartDate  time.Time      `gorm:"column:start_date"`
	EndDate    time.Time      `gorm:"column:end_date"`
	PropertyID int64          `gorm:"column:property_id"`
	Property   *propertyModel `gorm:"foreignKey:PropertyID"`
}

func (blockingModel) TableName() string { return "blockings" }

func toDomainBlocking(m blockingModel) *domain.Blocking {
	b := &domain.Blocking{
		ID:         m.ID,
		Name:       m.Name,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		PropertyID: m.PropertyID,
	}
	if m.Property != nil {
		b.Property = toDomainProperty(*m.Property)
	}
	return b
}

func toBlockingModel(b *domain.Blocking) blockingModel {
	return blockingModel{
		ID:         b.ID,
		Name:       b.Name,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		PropertyID: b.PropertyID,
	}
}

func (r *BlockingRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *BlockingRepository) Create(ctx context.Context, b *domain.Blocking) error {
	m := toBlockingModel(b)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	return nil
}

func (r *BlockingRepository) Update(ctx context.Context, b *domain.Blocking) error {
	m := toBlockingModel(b)
	return r.conn(ctx).Model(&blockingModel{ID: b.ID}).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"start_date":  m.StartDate,
			"end_date":    m.EndDate,
			"property_id": m.PropertyID,
		}).Error
}

func (r *BlockingRepository) GetByID(ctx context.Context, id int64) (*domain.Blocking, error) {
	var m blockingModel
	if err := r.conn(ctx).Preload("Property").First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainBlocking(m), nil
}

func (r *BlockingRepository) GetAll(ctx context.Context) ([]domain.Blocking, error) {
	var ms []blockingModel
	if err := r.conn(ctx).Preload("Property").Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Blocking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBlocking(m))
	}
	return out, nil
}

func (r *BlockingRepository) Delete(ctx context.Context, id int64) error {
	return r.conn(ctx).Delete(&blockingModel{}, id).Error
}

// FindOverlapping returns the blockings of a property colliding with the
// given range. Blockings have no cancel state, existence is enough.
func (r *BlockingRepository) FindOverlapping(ctx context.Context, propertyID int64, rng datetime.Range) ([]domain.Blocking, error) {
	var ms []blockingModel
	err := r.conn(ctx).
		Where("property_id = ?", propertyID).
		Where("(start_date < ? AND end_date > ?) OR (start_date = ? AND end_date = ?)",
			rng.End, rng.Start, rng.Start, rng.End).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Blocking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBlocking(m))
	}
	return out, nil
}
