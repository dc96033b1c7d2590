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

// DietaryTagService defines business logic for dietary tags.
// Tags are never deleted, only deactivated, because menu items keep
// referencing them by id.
type DietaryTagService interface {
	Create(ctx context.Context, req *dto.DietaryTagRequest) (*domain.DietaryTag, error)
	GetByID(ctx context.Context, id string) (*domain.DietaryTag, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*domain.DietaryTag, response.ListMeta, error)
	Update(ctx context.Context, id string, req *dto.DietaryTagRequest) (*domain.DietaryTag, error)
}

type dietaryTagService struct {
	repo         repository.DietaryTagRepository
	defaultLimit int
	log          *logger.Logger
}

// NewDietaryTagService creates a new DietaryTagService
func NewDietaryTagService(repo repository.DietaryTagRepository, defaultLimit int) DietaryTagService {
	return &dietaryTagService{
		repo:         repo,
		defaultLimit: defaultLimit,
		log:          logger.Get(),
	}
}

func (s *dietaryTagService) Create(ctx context.Context, req *dto.DietaryTagRequest) (*domain.DietaryTag, error) {
	now := time.Now()
	tag := &domain.DietaryTag{
		ID:        uuid.New().String(),
		Name:      req.Name.ToDomain(),
		IsActive:  req.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tag); err != nil {
		s.log.Error("failed to create dietary tag", zap.Error(err))
		return nil, err
	}
	return tag, nil
}

func (s *dietaryTagService) GetByID(ctx context.Context, id string) (*domain.DietaryTag, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrDietaryTagNotFound
	}
	return tag, nil
}

func (s *dietaryTagService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.DietaryTag, response.ListMeta, error) {
	params := query.ToParams(s.defaultLimit)
	if params.Limit <= 0 {
		return nil, response.ListMeta{}, ErrPageLimitRequired
	}

	tags, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, response.ListMeta{}, err
	}
	if tags == nil {
		tags = []*domain.DietaryTag{}
	}
	return tags, pageMeta(params, total), nil
}

func (s *dietaryTagService) Update(ctx context.Context, id string, req *dto.DietaryTagRequest) (*domain.DietaryTag, error) {
	tag, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name.ToDomain()
	tag.IsActive = req.IsActive

	if err := s.repo.Update(ctx, tag); err != nil {
		s.log.Error("failed to update dietary tag", zap.String("tag_id", id), zap.Error(err))
		return nil, err
	}
	return tag, nil
}
