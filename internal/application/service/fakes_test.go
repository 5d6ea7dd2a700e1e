package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
)

// In-memory repository fakes used by the service tests.

type fakeGRNRepo struct {
	grns []*entity.GRN
}

func (f *fakeGRNRepo) Create(_ context.Context, grn *entity.GRN) error {
	if grn.ID == uuid.Nil {
		grn.ID = uuid.New()
	}
	for i := range grn.LineItems {
		if grn.LineItems[i].ID == uuid.Nil {
			grn.LineItems[i].ID = uuid.New()
		}
		grn.LineItems[i].GRNID = grn.ID
	}
	f.grns = append(f.grns, grn)
	return nil
}

func (f *fakeGRNRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.GRN, error) {
	for _, grn := range f.grns {
		if grn.ID == id {
			return grn, nil
		}
	}
	return nil, nil
}

func (f *fakeGRNRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeGRNRepo) GetByGRNNumber(_ context.Context, grnNumber string) (*entity.GRN, error) {
	for _, grn := range f.grns {
		if grn.GRNNumber == grnNumber {
			return grn, nil
		}
	}
	return nil, nil
}

func (f *fakeGRNRepo) Update(_ context.Context, grn *entity.GRN) error {
	for i := range f.grns {
		if f.grns[i].ID == grn.ID {
			f.grns[i] = grn
			return nil
		}
	}
	return nil
}

func (f *fakeGRNRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.grns {
		if f.grns[i].ID == id {
			f.grns = append(f.grns[:i], f.grns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeGRNRepo) List(_ context.Context, _ *repository.GRNFilterParams) ([]entity.GRN, int64, error) {
	out := make([]entity.GRN, 0, len(f.grns))
	for _, grn := range f.grns {
		out = append(out, *grn)
	}
	return out, int64(len(out)), nil
}

func (f *fakeGRNRepo) ListAll(_ context.Context, _ *repository.GRNFilterParams) ([]entity.GRN, error) {
	out := make([]entity.GRN, 0, len(f.grns))
	for _, grn := range f.grns {
		out = append(out, *grn)
	}
	return out, nil
}

func (f *fakeGRNRepo) Recent(_ context.Context, limit int) ([]entity.GRN, error) {
	out := make([]entity.GRN, 0, len(f.grns))
	for _, grn := range f.grns {
		out = append(out, *grn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeGRNRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.grns)), nil
}

type fakeVendorRepo struct {
	vendors []*entity.Vendor
}

func (f *fakeVendorRepo) add(name string) *entity.Vendor {
	v := &entity.Vendor{ID: uuid.New(), Name: name}
	f.vendors = append(f.vendors, v)
	return v
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	f.vendors = append(f.vendors, vendor)
	return nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) Update(_ context.Context, _ *entity.Vendor) error { return nil }
func (f *fakeVendorRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func (f *fakeVendorRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Vendor, int64, error) {
	out := make([]entity.Vendor, 0, len(f.vendors))
	for _, v := range f.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (f *fakeVendorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.vendors)), nil
}

type fakeBranchRepo struct {
	branches []*entity.Branch
}

func (f *fakeBranchRepo) add(name string) *entity.Branch {
	b := &entity.Branch{ID: uuid.New(), Name: name, Active: true}
	f.branches = append(f.branches, b)
	return b
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	f.branches = append(f.branches, branch)
	return nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) GetByName(_ context.Context, name string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) Update(_ context.Context, _ *entity.Branch) error { return nil }
func (f *fakeBranchRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func (f *fakeBranchRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Branch, int64, error) {
	out := make([]entity.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBranchRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.branches)), nil
}

type fakeSubcategoryRepo struct {
	subcategories []*entity.AssetSubcategory
}

func (f *fakeSubcategoryRepo) add(name string) *entity.AssetSubcategory {
	s := &entity.AssetSubcategory{ID: uuid.New(), CategoryID: uuid.New(), Name: name, Active: true}
	f.subcategories = append(f.subcategories, s)
	return s
}

func (f *fakeSubcategoryRepo) Create(_ context.Context, subcategory *entity.AssetSubcategory) error {
	if subcategory.ID == uuid.Nil {
		subcategory.ID = uuid.New()
	}
	f.subcategories = append(f.subcategories, subcategory)
	return nil
}

func (f *fakeSubcategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.AssetSubcategory, error) {
	for _, s := range f.subcategories {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubcategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.AssetSubcategory, error) {
	for _, s := range f.subcategories {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubcategoryRepo) GetByName(_ context.Context, name string) (*entity.AssetSubcategory, error) {
	for _, s := range f.subcategories {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubcategoryRepo) Update(_ context.Context, _ *entity.AssetSubcategory) error { return nil }
func (f *fakeSubcategoryRepo) Delete(_ context.Context, _ uuid.UUID) error                { return nil }

func (f *fakeSubcategoryRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string, _ *uuid.UUID) ([]entity.AssetSubcategory, int64, error) {
	out := make([]entity.AssetSubcategory, 0, len(f.subcategories))
	for _, s := range f.subcategories {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}
