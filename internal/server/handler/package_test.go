package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/pkg/response"
)

// MockPackageService is a mock implementation of PackageService
type MockPackageService struct {
	CreateFunc         func(ctx context.Context, req *dto.PackageRequest) (*domain.Package, error)
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Package, error)
	ListFunc           func(ctx context.Context, query *dto.ListQuery) ([]*domain.Package, response.ListMeta, error)
	ListActiveFunc     func(ctx context.Context) ([]*domain.Package, error)
	UpdateFunc         func(ctx context.Context, id string, req *dto.PackageRequest) (*domain.Package, error)
	UpdateHallFunc     func(ctx context.Context, id string, req *dto.PackageHallRequest) (*domain.Package, error)
	UpdateItemsFunc    func(ctx context.Context, id string, req *dto.PackageItemsRequest) (*domain.Package, error)
	UpdateServicesFunc func(ctx context.Context, id string, req *dto.PackageServicesRequest) (*domain.Package, error)
	SetActiveFunc      func(ctx context.Context, id string, isActive bool) (*domain.Package, error)
}

func (m *MockPackageService) Create(ctx context.Context, req *dto.PackageRequest) (*domain.Package, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPackageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPackageService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Package, response.ListMeta, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return nil, response.ListMeta{}, nil
}

func (m *MockPackageService) ListActive(ctx context.Context) ([]*domain.Package, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockPackageService) Update(ctx context.Context, id string, req *dto.PackageRequest) (*domain.Package, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) UpdateHall(ctx context.Context, id string, req *dto.PackageHallRequest) (*domain.Package, error) {
	if m.UpdateHallFunc != nil {
		return m.UpdateHallFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) UpdateItems(ctx context.Context, id string, req *dto.PackageItemsRequest) (*domain.Package, error) {
	if m.UpdateItemsFunc != nil {
		return m.UpdateItemsFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) UpdateServices(ctx context.Context, id string, req *dto.PackageServicesRequest) (*domain.Package, error) {
	if m.UpdateServicesFunc != nil {
		return m.UpdateServicesFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) SetActive(ctx context.Context, id string, isActive bool) (*domain.Package, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, isActive)
	}
	return nil, nil
}

func packageRouter(svc *MockPackageService) *gin.Engine {
	h := NewPackageHandler(svc)
	r := gin.New()
	r.POST("/admin/packages", h.Create)
	r.PUT("/admin/packages/:id", h.Update)
	r.PATCH("/admin/packages/:id", h.SetActive)
	r.PUT("/admin/halls/packages/:id", h.UpdateHall)
	r.PUT("/admin/items/packages/:id", h.UpdateItems)
	r.PUT("/admin/services/packages/:id", h.UpdateServices)
	return r
}

func TestPackageHandler_Create_RequiresBanner(t *testing.T) {
	r := packageRouter(&MockPackageService{})

	w, env := doJSON(t, r, http.MethodPost, "/admin/packages",
		`{"name":{"en":"Wedding Gold","am":"የሰርግ ወርቅ"},"basePrice":45000}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Banner image is required", env.Message)
}

func TestPackageHandler_Create_OversizedImageIsBadRequest(t *testing.T) {
	svc := &MockPackageService{
		CreateFunc: func(ctx context.Context, req *dto.PackageRequest) (*domain.Package, error) {
			return nil, domain.ErrImageTooLarge
		},
	}
	r := packageRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/admin/packages",
		`{"name":{"en":"Wedding Gold","am":"የሰርግ ወርቅ"},"basePrice":45000,"minGuests":50,"maxGuests":300,"bannerImage":"banner.jpg"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
	assert.Contains(t, env.Message, "maximum upload size")
}

func TestPackageHandler_Update_ToleratesMissingBanner(t *testing.T) {
	svc := &MockPackageService{
		UpdateFunc: func(ctx context.Context, id string, req *dto.PackageRequest) (*domain.Package, error) {
			return &domain.Package{ID: id, BannerImage: "stored.jpg"}, nil
		},
	}
	r := packageRouter(svc)

	w, env := doJSON(t, r, http.MethodPut, "/admin/packages/pkg-1",
		`{"name":{"en":"Wedding Gold","am":"የሰርግ ወርቅ"},"basePrice":45000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestPackageHandler_SetActive(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFlag   *bool
	}{
		{name: "activate", query: "?isActive=true", wantStatus: http.StatusOK, wantFlag: boolPtr(true)},
		{name: "deactivate", query: "?isActive=false", wantStatus: http.StatusOK, wantFlag: boolPtr(false)},
		{name: "missing flag", query: "", wantStatus: http.StatusBadRequest},
		{name: "junk flag", query: "?isActive=yes", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFlag *bool
			svc := &MockPackageService{
				SetActiveFunc: func(ctx context.Context, id string, isActive bool) (*domain.Package, error) {
					gotFlag = &isActive
					return &domain.Package{ID: id, IsActive: isActive}, nil
				},
			}
			r := packageRouter(svc)

			w, _ := doJSON(t, r, http.MethodPatch, "/admin/packages/pkg-1"+tt.query, "")
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantFlag == nil {
				assert.Nil(t, gotFlag, "the service must not be called on a bad flag")
			} else {
				require.NotNil(t, gotFlag)
				assert.Equal(t, *tt.wantFlag, *gotFlag)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestPackageHandler_UpdateHall_RejectsZeroCapacity(t *testing.T) {
	r := packageRouter(&MockPackageService{})

	w, env := doJSON(t, r, http.MethodPut, "/admin/halls/packages/pkg-1",
		`{"includesHall":true,"hall":{"capacity":0}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Hall capacity must be positive", env.Message)
}

func TestPackageHandler_UpdateServices(t *testing.T) {
	var got *dto.PackageServicesRequest
	svc := &MockPackageService{
		UpdateServicesFunc: func(ctx context.Context, id string, req *dto.PackageServicesRequest) (*domain.Package, error) {
			got = req
			return &domain.Package{ID: id}, nil
		},
	}
	r := packageRouter(svc)

	w, _ := doJSON(t, r, http.MethodPut, "/admin/services/packages/pkg-1",
		`{"services":[{"en":"DJ","am":"ዲጄ"},{"en":"Decoration","am":"ማስጌጥ"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Len(t, got.Services, 2)
}
