package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// GRNRepository defines the interface for GRN data operations
type GRNRepository interface {
	Create(ctx context.Context, grn *entity.GRN) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GRN, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error)
	GetByGRNNumber(ctx context.Context, grnNumber string) (*entity.GRN, error)
	// Update persists the header and replaces the line-item set atomically.
	Update(ctx context.Context, grn *entity.GRN) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *GRNFilterParams) ([]entity.GRN, int64, error)
	// ListAll returns every matching GRN without pagination, for reports.
	ListAll(ctx context.Context, params *GRNFilterParams) ([]entity.GRN, error)
	Recent(ctx context.Context, limit int) ([]entity.GRN, error)
	Count(ctx context.Context) (int64, error)
}

// GRNFilterParams contains filtering parameters for GRN queries
type GRNFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.GRNStatus
	VendorID   *uuid.UUID
	BranchID   *uuid.UUID
	From       *time.Time
	To         *time.Time
	SortBy     string
	SortOrder  string
}
