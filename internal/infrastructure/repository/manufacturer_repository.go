package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	domainRepo "github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
	"gorm.io/gorm"
)

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository creates a new manufacturer repository
func NewManufacturerRepository(db *gorm.DB) domainRepo.ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	return r.db.WithContext(ctx).Create(manufacturer).Error
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	err := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &manufacturer, err
}

func (r *manufacturerRepository) GetByName(ctx context.Context, name string) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	err := r.db.WithContext(ctx).First(&manufacturer, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &manufacturer, err
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *entity.Manufacturer) error {
	return r.db.WithContext(ctx).Save(manufacturer).Error
}

func (r *manufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Manufacturer{}, "id = ?", id).Error
}

func (r *manufacturerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Manufacturer, int64, error) {
	var manufacturers []entity.Manufacturer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Manufacturer{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&manufacturers).Error

	return manufacturers, total, err
}
