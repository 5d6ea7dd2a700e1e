package service

import (
	"context"

	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
)

// recentGRNLimit is the number of recent GRNs shown on the dashboard.
const recentGRNLimit = 5

// DashboardService aggregates counts and recent activity for the dashboard
type DashboardService struct {
	grnRepo      repository.GRNRepository
	vendorRepo   repository.VendorRepository
	branchRepo   repository.BranchRepository
	categoryRepo repository.AssetCategoryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	grnRepo repository.GRNRepository,
	vendorRepo repository.VendorRepository,
	branchRepo repository.BranchRepository,
	categoryRepo repository.AssetCategoryRepository,
) *DashboardService {
	return &DashboardService{
		grnRepo:      grnRepo,
		vendorRepo:   vendorRepo,
		branchRepo:   branchRepo,
		categoryRepo: categoryRepo,
	}
}

// DashboardStats holds the aggregate figures for the dashboard
type DashboardStats struct {
	TotalGRNs       int64        `json:"total_grns"`
	TotalVendors    int64        `json:"total_vendors"`
	TotalBranches   int64        `json:"total_branches"`
	TotalCategories int64        `json:"total_categories"`
	RecentGRNs      []entity.GRN `json:"recent_grns"`
}

// GetStats collects entity counts and the most recent GRNs
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalGRNs, err = s.grnRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVendors, err = s.vendorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBranches, err = s.branchRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, err
	}

	recent, err := s.grnRepo.Recent(ctx, recentGRNLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentGRNs = recent

	return stats, nil
}
