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

// IngredientService defines business logic for ingredients.
// Like dietary tags, ingredients are deactivated rather than deleted.
type IngredientService interface {
	Create(ctx context.Context, req *dto.IngredientRequest) (*domain.Ingredient, error)
	GetByID(ctx context.Context, id string) (*domain.Ingredient, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*domain.Ingredient, response.ListMeta, error)
	Update(ctx context.Context, id string, req *dto.IngredientRequest) (*domain.Ingredient, error)
}

type ingredientService struct {
	repo         repository.IngredientRepository
	defaultLimit int
	log          *logger.Logger
}

// NewIngredientService creates a new IngredientService
func NewIngredientService(repo repository.IngredientRepository, defaultLimit int) IngredientService {
	return &ingredientService{
		repo:         repo,
		defaultLimit: defaultLimit,
		log:          logger.Get(),
	}
}

func (s *ingredientService) Create(ctx context.Context, req *dto.IngredientRequest) (*domain.Ingredient, error) {
	now := time.Now()
	ingredient := &domain.Ingredient{
		ID:        uuid.New().String(),
		Name:      req.Name.ToDomain(),
		IsActive:  req.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, ingredient); err != nil {
		s.log.Error("failed to create ingredient", zap.Error(err))
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) GetByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, domain.ErrIngredientNotFound
	}
	return ingredient, nil
}

func (s *ingredientService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Ingredient, response.ListMeta, error) {
	params := query.ToParams(s.defaultLimit)
	if params.Limit <= 0 {
		return nil, response.ListMeta{}, ErrPageLimitRequired
	}

	ingredients, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, response.ListMeta{}, err
	}
	if ingredients == nil {
		ingredients = []*domain.Ingredient{}
	}
	return ingredients, pageMeta(params, total), nil
}

func (s *ingredientService) Update(ctx context.Context, id string, req *dto.IngredientRequest) (*domain.Ingredient, error) {
	ingredient, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredient.Name = req.Name.ToDomain()
	ingredient.IsActive = req.IsActive

	if err := s.repo.Update(ctx, ingredient); err != nil {
		s.log.Error("failed to update ingredient", zap.String("ingredient_id", id), zap.Error(err))
		return nil, err
	}
	return ingredient, nil
}
