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

// MenuItemService defines business logic for menu items
type MenuItemService interface {
	Create(ctx context.Context, req *dto.MenuItemRequest) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*domain.MenuItem, response.ListMeta, error)
	Update(ctx context.Context, id string, req *dto.MenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type menuItemService struct {
	repo         repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	defaultLimit int
	log          *logger.Logger
}

// NewMenuItemService creates a new MenuItemService
func NewMenuItemService(repo repository.MenuItemRepository, categoryRepo repository.CategoryRepository, defaultLimit int) MenuItemService {
	return &menuItemService{
		repo:         repo,
		categoryRepo: categoryRepo,
		defaultLimit: defaultLimit,
		log:          logger.Get(),
	}
}

func (s *menuItemService) Create(ctx context.Context, req *dto.MenuItemRequest) (*domain.MenuItem, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &domain.MenuItem{
		ID:            uuid.New().String(),
		Name:          req.Name.ToDomain(),
		Description:   req.Description.ToDomain(),
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		IngredientIDs: req.IngredientIDs,
		DietaryTagIDs: req.DietaryTagIDs,
		IsDrink:       req.IsDrink,
		Image:         req.Image,
		IsActive:      req.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error("failed to create menu item", zap.Error(err))
		return nil, err
	}

	s.log.Info("menu item created",
		zap.String("item_id", item.ID),
		zap.String("category_id", item.CategoryID))
	return item, nil
}

func (s *menuItemService) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func (s *menuItemService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.MenuItem, response.ListMeta, error) {
	params := query.ToParams(s.defaultLimit)
	if params.Limit <= 0 {
		return nil, response.ListMeta{}, ErrPageLimitRequired
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, response.ListMeta{}, err
	}
	if items == nil {
		items = []*domain.MenuItem{}
	}
	return items, pageMeta(params, total), nil
}

func (s *menuItemService) Update(ctx context.Context, id string, req *dto.MenuItemRequest) (*domain.MenuItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != item.CategoryID {
		if err := s.checkCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	item.Name = req.Name.ToDomain()
	item.Description = req.Description.ToDomain()
	item.Price = req.Price
	item.CategoryID = req.CategoryID
	item.IngredientIDs = req.IngredientIDs
	item.DietaryTagIDs = req.DietaryTagIDs
	item.IsDrink = req.IsDrink
	if req.Image != "" {
		item.Image = req.Image
	}
	item.IsActive = req.IsActive

	if err := s.repo.Update(ctx, item); err != nil {
		s.log.Error("failed to update menu item", zap.String("item_id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *menuItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("menu item deleted", zap.String("item_id", id))
	return nil
}

func (s *menuItemService) checkCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}
