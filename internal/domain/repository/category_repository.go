package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// AssetCategoryRepository defines the interface for asset category data operations
type AssetCategoryRepository interface {
	Create(ctx context.Context, category *entity.AssetCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetCategory, error)
	GetBySlug(ctx context.Context, slug string) (*entity.AssetCategory, error)
	Update(ctx context.Context, category *entity.AssetCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.AssetCategory, int64, error)
	Count(ctx context.Context) (int64, error)
}

// AssetSubcategoryRepository defines the interface for asset subcategory data operations
type AssetSubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.AssetSubcategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetSubcategory, error)
	GetBySlug(ctx context.Context, slug string) (*entity.AssetSubcategory, error)
	GetByName(ctx context.Context, name string) (*entity.AssetSubcategory, error)
	Update(ctx context.Context, subcategory *entity.AssetSubcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, categoryID *uuid.UUID) ([]entity.AssetSubcategory, int64, error)
}
