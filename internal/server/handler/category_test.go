package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	CreateFunc  func(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Category, error)
	ListFunc    func(ctx context.Context, query *dto.ListQuery) ([]*domain.Category, response.ListMeta, error)
	UpdateFunc  func(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *MockCategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Category, response.ListMeta, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return nil, response.ListMeta{}, nil
}

func (m *MockCategoryService) Update(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func categoryRouter(svc *MockCategoryService) *gin.Engine {
	h := NewCategoryHandler(svc)
	r := gin.New()
	r.POST("/admin/categories", h.Create)
	r.GET("/admin/categories", h.List)
	r.GET("/admin/categories/:id", h.GetByID)
	r.PUT("/admin/categories/:id", h.Update)
	r.DELETE("/admin/categories/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCategoryHandler_Create(t *testing.T) {
	svc := &MockCategoryService{
		CreateFunc: func(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error) {
			return &domain.Category{ID: "cat-1", Name: req.Name.ToDomain()}, nil
		},
	}
	r := categoryRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/admin/categories",
		`{"name":{"en":"Mains","am":"ዋና"},"isActive":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
}

func TestCategoryHandler_Create_ValidationMessage(t *testing.T) {
	r := categoryRouter(&MockCategoryService{})

	w, env := doJSON(t, r, http.MethodPost, "/admin/categories",
		`{"name":{"en":"Mains"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Amharic name is required", env.Message)
}

func TestCategoryHandler_List_Envelope(t *testing.T) {
	svc := &MockCategoryService{
		ListFunc: func(ctx context.Context, query *dto.ListQuery) ([]*domain.Category, response.ListMeta, error) {
			return []*domain.Category{{ID: "cat-1", Name: domain.Text{En: "Mains"}}},
				response.ListMeta{Page: 2, LastPage: 5, Limit: 10, Total: 42}, nil
		},
	}
	r := categoryRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/admin/categories?page=2&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, data["page"])
	assert.EqualValues(t, 5, data["lastPage"])
	assert.EqualValues(t, 42, data["total"])
	// The resource array sits next to the metadata, not under a generic key
	assert.Contains(t, data, "categories")
}

func TestCategoryHandler_GetByID_NotFound(t *testing.T) {
	svc := &MockCategoryService{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	r := categoryRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/admin/categories/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "category not found", env.Message)
}

func TestCategoryHandler_Delete(t *testing.T) {
	var deleted string
	svc := &MockCategoryService{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	r := categoryRouter(svc)

	w, env := doJSON(t, r, http.MethodDelete, "/admin/categories/cat-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "cat-1", deleted)
}
