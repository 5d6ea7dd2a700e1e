package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// BranchService handles branch master-data operations
type BranchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// BranchInput represents the create/update branch input
type BranchInput struct {
	Name     string
	Location *string
	Code     *string
	Active   *bool
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(ctx context.Context, input *BranchInput) (*entity.Branch, error) {
	existing, err := s.branchRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Branch with this name already exists")
	}

	branch := &entity.Branch{
		Name:     input.Name,
		Location: input.Location,
		Code:     input.Code,
		Active:   true,
	}
	if input.Active != nil {
		branch.Active = *input.Active
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// GetBranch retrieves a branch by ID
func (s *BranchService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// UpdateBranch updates an existing branch
func (s *BranchService) UpdateBranch(ctx context.Context, id uuid.UUID, input *BranchInput) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if input.Name != branch.Name {
		existing, err := s.branchRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("Branch with this name already exists")
		}
	}

	branch.Name = input.Name
	branch.Location = input.Location
	branch.Code = input.Code
	if input.Active != nil {
		branch.Active = *input.Active
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// DeleteBranch deletes a branch by ID
func (s *BranchService) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}
	return s.branchRepo.Delete(ctx, id)
}

// ListBranches lists branches with pagination and search
func (s *BranchService) ListBranches(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Branch], error) {
	branches, total, err := s.branchRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(branches, pag), nil
}
