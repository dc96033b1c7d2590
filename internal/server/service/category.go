package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/repository"
	"github.com/addiskitchen/platform/pkg/logger"
	"github.com/addiskitchen/platform/pkg/response"
)

// CategoryService defines business logic for menu categories
type CategoryService interface {
	Create(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*domain.Category, response.ListMeta, error)
	Update(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo         repository.CategoryRepository
	defaultLimit int
	log          *logger.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository, defaultLimit int) CategoryService {
	return &categoryService{
		repo:         repo,
		defaultLimit: defaultLimit,
		log:          logger.Get(),
	}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := &domain.Category{
		ID:            uuid.New().String(),
		Name:          req.Name.ToDomain(),
		Description:   req.Description.ToDomain(),
		Image:         req.Image,
		IsTraditional: req.IsTraditional,
		IsActive:      req.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	s.log.Info("category created", zap.String("category_id", category.ID))
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Category, response.ListMeta, error) {
	params := query.ToParams(s.defaultLimit)
	if params.Limit <= 0 {
		return nil, response.ListMeta{}, ErrPageLimitRequired
	}

	categories, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, response.ListMeta{}, err
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, pageMeta(params, total), nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name.ToDomain()
	category.Description = req.Description.ToDomain()
	if req.Image != "" {
		category.Image = req.Image
	}
	category.IsTraditional = req.IsTraditional
	category.IsActive = req.IsActive

	if err := s.repo.Update(ctx, category); err != nil {
		s.log.Error("failed to update category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.String("category_id", id))
	return nil
}
