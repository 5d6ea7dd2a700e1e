package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	domainRepo "github.com/nmwangi/assetflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type grnRepository struct {
	db *gorm.DB
}

// NewGRNRepository creates a new GRN repository
func NewGRNRepository(db *gorm.DB) domainRepo.GRNRepository {
	return &grnRepository{db: db}
}

func (r *grnRepository) Create(ctx context.Context, grn *entity.GRN) error {
	return r.db.WithContext(ctx).Create(grn).Error
}

func (r *grnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	var grn entity.GRN
	err := r.db.WithContext(ctx).First(&grn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &grn, err
}

func (r *grnRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	var grn entity.GRN
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Branch").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("grn_line_items.position ASC")
		}).
		Preload("LineItems.Subcategory").
		First(&grn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &grn, err
}

func (r *grnRepository) GetByGRNNumber(ctx context.Context, grnNumber string) (*entity.GRN, error) {
	var grn entity.GRN
	err := r.db.WithContext(ctx).First(&grn, "grn_number = ?", grnNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &grn, err
}

// Update persists the header and replaces the line-item set in one transaction.
func (r *grnRepository) Update(ctx context.Context, grn *entity.GRN) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grn_id = ?", grn.ID).Delete(&entity.GRNLineItem{}).Error; err != nil {
			return err
		}
		for i := range grn.LineItems {
			grn.LineItems[i].ID = uuid.Nil
			grn.LineItems[i].GRNID = grn.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(grn).Error
	})
}

func (r *grnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grn_id = ?", id).Delete(&entity.GRNLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.GRN{}, "id = ?", id).Error
	})
}

func (r *grnRepository) List(ctx context.Context, params *domainRepo.GRNFilterParams) ([]entity.GRN, int64, error) {
	var grns []entity.GRN
	var total int64

	query := r.buildFilterQuery(ctx, params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Vendor").
		Preload("Branch").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("grn_line_items.position ASC")
		}).
		Preload("LineItems.Subcategory").
		Order(r.sortClause(params))

	if params.Pagination != nil {
		params.Pagination.Validate()
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.Find(&grns).Error
	return grns, total, err
}

func (r *grnRepository) ListAll(ctx context.Context, params *domainRepo.GRNFilterParams) ([]entity.GRN, error) {
	var grns []entity.GRN
	err := r.buildFilterQuery(ctx, params).
		Preload("Vendor").
		Preload("Branch").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("grn_line_items.position ASC")
		}).
		Order(r.sortClause(params)).
		Find(&grns).Error
	return grns, err
}

func (r *grnRepository) Recent(ctx context.Context, limit int) ([]entity.GRN, error) {
	var grns []entity.GRN
	err := r.db.WithContext(ctx).Model(&entity.GRN{}).
		Preload("Vendor").
		Preload("Branch").
		Order("created_at DESC").
		Limit(limit).
		Find(&grns).Error
	return grns, err
}

func (r *grnRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.GRN{}).Count(&total).Error
	return total, err
}

func (r *grnRepository) buildFilterQuery(ctx context.Context, params *domainRepo.GRNFilterParams) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.GRN{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("grn_number ILIKE ? OR invoice_number ILIKE ?", search, search)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.VendorID != nil {
		query = query.Where("vendor_id = ?", *params.VendorID)
	}
	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}
	if params.From != nil {
		query = query.Where("grn_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("grn_date <= ?", *params.To)
	}

	return query
}

func (r *grnRepository) sortClause(params *domainRepo.GRNFilterParams) string {
	sortBy := "created_at"
	switch params.SortBy {
	case "grn_number", "grn_date", "grand_total", "created_at":
		sortBy = params.SortBy
	}
	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
