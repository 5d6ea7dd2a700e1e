package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
	"github.com/nmwangi/assetflow-api/pkg/utils"
)

// CategoryService handles asset category and subcategory operations
type CategoryService struct {
	categoryRepo    repository.AssetCategoryRepository
	subcategoryRepo repository.AssetSubcategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repository.AssetCategoryRepository,
	subcategoryRepo repository.AssetSubcategoryRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// CategoryInput represents the create/update category input
type CategoryInput struct {
	Name        string
	Description *string
}

// SubcategoryInput represents the create/update subcategory input
type SubcategoryInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description *string
	Active      *bool
}

// CreateCategory creates a new asset category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CategoryInput) (*entity.AssetCategory, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	category := &entity.AssetCategory{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID with its subcategories
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.AssetCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.AssetCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	slug := utils.Slugify(input.Name)
	if slug != category.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("Category with this name already exists")
		}
	}

	category.Name = input.Name
	category.Slug = slug
	category.Description = input.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by ID
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories lists categories with pagination and search
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.AssetCategory], error) {
	categories, total, err := s.categoryRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(categories, pag), nil
}

// CreateSubcategory creates a new asset subcategory under a category
func (s *CategoryService) CreateSubcategory(ctx context.Context, input *SubcategoryInput) (*entity.AssetSubcategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.subcategoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Subcategory with this name already exists")
	}

	subcategory := &entity.AssetSubcategory{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Active:      true,
	}
	if input.Active != nil {
		subcategory.Active = *input.Active
	}

	if err := s.subcategoryRepo.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

// GetSubcategory retrieves a subcategory by ID
func (s *CategoryService) GetSubcategory(ctx context.Context, id uuid.UUID) (*entity.AssetSubcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}
	return subcategory, nil
}

// UpdateSubcategory updates an existing subcategory
func (s *CategoryService) UpdateSubcategory(ctx context.Context, id uuid.UUID, input *SubcategoryInput) (*entity.AssetSubcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}

	if input.CategoryID != subcategory.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	slug := utils.Slugify(input.Name)
	if slug != subcategory.Slug {
		existing, err := s.subcategoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("Subcategory with this name already exists")
		}
	}

	subcategory.CategoryID = input.CategoryID
	subcategory.Name = input.Name
	subcategory.Slug = slug
	subcategory.Description = input.Description
	if input.Active != nil {
		subcategory.Active = *input.Active
	}

	if err := s.subcategoryRepo.Update(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

// DeleteSubcategory deletes a subcategory by ID
func (s *CategoryService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return apperror.NewNotFoundError("Subcategory")
	}
	return s.subcategoryRepo.Delete(ctx, id)
}

// ListSubcategories lists subcategories, optionally scoped to a category
func (s *CategoryService) ListSubcategories(ctx context.Context, params *pagination.PaginationParams, search string, categoryID *uuid.UUID) (*pagination.PaginatedResult[entity.AssetSubcategory], error) {
	subcategories, total, err := s.subcategoryRepo.List(ctx, params, search, categoryID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(subcategories, pag), nil
}
