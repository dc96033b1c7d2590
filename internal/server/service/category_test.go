package service

import (
	"context"
	"errors"
	"testing"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/repository"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	CreateFunc  func(ctx context.Context, category *domain.Category) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Category, error)
	ListFunc    func(ctx context.Context, params repository.ListParams) ([]*domain.Category, int, error)
	UpdateFunc  func(ctx context.Context, category *domain.Category) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) List(ctx context.Context, params repository.ListParams) ([]*domain.Category, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func categoryRequest() *dto.CategoryRequest {
	return &dto.CategoryRequest{
		Name:     dto.TextPayload{En: "Main Dishes", Am: "ዋና ምግቦች"},
		IsActive: true,
	}
}

func TestCategoryService_Create(t *testing.T) {
	var stored *domain.Category
	repo := &MockCategoryRepository{
		CreateFunc: func(ctx context.Context, category *domain.Category) error {
			stored = category
			return nil
		},
	}

	svc := NewCategoryService(repo, 10)
	category, err := svc.Create(context.Background(), categoryRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID == "" {
		t.Error("expected a generated id")
	}
	if category.CreatedAt.IsZero() || category.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if stored == nil || stored.Name.En != "Main Dishes" {
		t.Errorf("unexpected stored category: %+v", stored)
	}
}

func TestCategoryService_GetByID_NotFound(t *testing.T) {
	svc := NewCategoryService(&MockCategoryRepository{}, 10)

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_List(t *testing.T) {
	tests := []struct {
		name         string
		defaultLimit int
		query        dto.ListQuery
		total        int
		wantLimit    int
		wantLastPage int
		wantErr      error
	}{
		{
			name:         "default limit from config",
			defaultLimit: 10,
			query:        dto.ListQuery{},
			total:        25,
			wantLimit:    10,
			wantLastPage: 3,
		},
		{
			name:         "explicit limit wins",
			defaultLimit: 10,
			query:        dto.ListQuery{Page: 2, Limit: 2},
			total:        5,
			wantLimit:    2,
			wantLastPage: 3,
		},
		{
			name:         "empty collection reports one page",
			defaultLimit: 10,
			query:        dto.ListQuery{},
			total:        0,
			wantLimit:    10,
			wantLastPage: 1,
		},
		{
			name:         "unconfigured limit is rejected",
			defaultLimit: 0,
			query:        dto.ListQuery{},
			wantErr:      ErrPageLimitRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCategoryRepository{
				ListFunc: func(ctx context.Context, params repository.ListParams) ([]*domain.Category, int, error) {
					return []*domain.Category{}, tt.total, nil
				},
			}
			svc := NewCategoryService(repo, tt.defaultLimit)

			items, meta, err := svc.List(context.Background(), &tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if items == nil {
				t.Error("expected a non-nil slice for an empty page")
			}
			if meta.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", meta.Limit, tt.wantLimit)
			}
			if meta.LastPage != tt.wantLastPage {
				t.Errorf("lastPage = %d, want %d", meta.LastPage, tt.wantLastPage)
			}
			if meta.Total != tt.total {
				t.Errorf("total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}

func TestCategoryService_Update(t *testing.T) {
	existing := &domain.Category{
		ID:    "cat-1",
		Name:  domain.Text{En: "Old", Am: "አሮጌ"},
		Image: "stored.jpg",
	}
	repo := &MockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Category, error) {
			return existing, nil
		},
	}
	svc := NewCategoryService(repo, 10)

	req := categoryRequest()
	updated, err := svc.Update(context.Background(), "cat-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name.En != "Main Dishes" {
		t.Errorf("name not updated: %+v", updated.Name)
	}
	// An empty image in the request keeps the stored one
	if updated.Image != "stored.jpg" {
		t.Errorf("image = %q, want stored.jpg", updated.Image)
	}
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	svc := NewCategoryService(&MockCategoryRepository{}, 10)

	_, err := svc.Update(context.Background(), "missing", categoryRequest())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
