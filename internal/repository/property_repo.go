package repository

import (
	"context"

	"bookingservice/internal/database"
	"bookingservice/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

type propertyModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (propertyModel) TableName() string { return "properties" }

func toDomainProperty(m propertyModel) *domain.Property {
	return &domain.Property{ID: m.ID, Name: m.Name}
}

func (r *PropertyRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var m propertyModel
	if err := r.conn(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainProperty(m), nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := propertyModel{ID: p.ID, Name: p.Name}
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}
