package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// ManufacturerRepository defines the interface for manufacturer data operations
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *entity.Manufacturer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error)
	GetByName(ctx context.Context, name string) (*entity.Manufacturer, error)
	Update(ctx context.Context, manufacturer *entity.Manufacturer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Manufacturer, int64, error)
}
