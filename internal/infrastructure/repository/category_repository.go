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

type assetCategoryRepository struct {
	db *gorm.DB
}

// NewAssetCategoryRepository creates a new asset category repository
func NewAssetCategoryRepository(db *gorm.DB) domainRepo.AssetCategoryRepository {
	return &assetCategoryRepository{db: db}
}

func (r *assetCategoryRepository) Create(ctx context.Context, category *entity.AssetCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *assetCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetCategory, error) {
	var category entity.AssetCategory
	err := r.db.WithContext(ctx).Preload("Subcategories").First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *assetCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.AssetCategory, error) {
	var category entity.AssetCategory
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *assetCategoryRepository) Update(ctx context.Context, category *entity.AssetCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *assetCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.AssetCategory{}, "id = ?", id).Error
}

func (r *assetCategoryRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.AssetCategory, int64, error) {
	var categories []entity.AssetCategory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AssetCategory{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Subcategories").
		Order("name ASC").
		Find(&categories).Error

	return categories, total, err
}

func (r *assetCategoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.AssetCategory{}).Count(&total).Error
	return total, err
}

type assetSubcategoryRepository struct {
	db *gorm.DB
}

// NewAssetSubcategoryRepository creates a new asset subcategory repository
func NewAssetSubcategoryRepository(db *gorm.DB) domainRepo.AssetSubcategoryRepository {
	return &assetSubcategoryRepository{db: db}
}

func (r *assetSubcategoryRepository) Create(ctx context.Context, subcategory *entity.AssetSubcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *assetSubcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetSubcategory, error) {
	var subcategory entity.AssetSubcategory
	err := r.db.WithContext(ctx).Preload("Category").First(&subcategory, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subcategory, err
}

func (r *assetSubcategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.AssetSubcategory, error) {
	var subcategory entity.AssetSubcategory
	err := r.db.WithContext(ctx).First(&subcategory, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subcategory, err
}

func (r *assetSubcategoryRepository) GetByName(ctx context.Context, name string) (*entity.AssetSubcategory, error) {
	var subcategory entity.AssetSubcategory
	err := r.db.WithContext(ctx).First(&subcategory, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subcategory, err
}

func (r *assetSubcategoryRepository) Update(ctx context.Context, subcategory *entity.AssetSubcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *assetSubcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.AssetSubcategory{}, "id = ?", id).Error
}

func (r *assetSubcategoryRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, categoryID *uuid.UUID) ([]entity.AssetSubcategory, int64, error) {
	var subcategories []entity.AssetSubcategory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AssetSubcategory{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Category").
		Order("name ASC").
		Find(&subcategories).Error

	return subcategories, total, err
}
