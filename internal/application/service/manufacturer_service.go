package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// ManufacturerService handles manufacturer master-data operations
type ManufacturerService struct {
	manufacturerRepo repository.ManufacturerRepository
}

// NewManufacturerService creates a new manufacturer service
func NewManufacturerService(manufacturerRepo repository.ManufacturerRepository) *ManufacturerService {
	return &ManufacturerService{manufacturerRepo: manufacturerRepo}
}

// ManufacturerInput represents the create/update manufacturer input
type ManufacturerInput struct {
	Name        string
	Description *string
}

// CreateManufacturer creates a new manufacturer
func (s *ManufacturerService) CreateManufacturer(ctx context.Context, input *ManufacturerInput) (*entity.Manufacturer, error) {
	existing, err := s.manufacturerRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Manufacturer with this name already exists")
	}

	manufacturer := &entity.Manufacturer{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

// GetManufacturer retrieves a manufacturer by ID
func (s *ManufacturerService) GetManufacturer(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, apperror.NewNotFoundError("Manufacturer")
	}
	return manufacturer, nil
}

// UpdateManufacturer updates an existing manufacturer
func (s *ManufacturerService) UpdateManufacturer(ctx context.Context, id uuid.UUID, input *ManufacturerInput) (*entity.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, apperror.NewNotFoundError("Manufacturer")
	}

	if input.Name != manufacturer.Name {
		existing, err := s.manufacturerRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("Manufacturer with this name already exists")
		}
	}

	manufacturer.Name = input.Name
	manufacturer.Description = input.Description

	if err := s.manufacturerRepo.Update(ctx, manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

// DeleteManufacturer deletes a manufacturer by ID
func (s *ManufacturerService) DeleteManufacturer(ctx context.Context, id uuid.UUID) error {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if manufacturer == nil {
		return apperror.NewNotFoundError("Manufacturer")
	}
	return s.manufacturerRepo.Delete(ctx, id)
}

// ListManufacturers lists manufacturers with pagination and search
func (s *ManufacturerService) ListManufacturers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Manufacturer], error) {
	manufacturers, total, err := s.manufacturerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(manufacturers, pag), nil
}
