package repository

import (
	"context"
	"time"

	"github.com/addiskitchen/platform/internal/server/domain"
)

// ListParams narrows a paginated list read. Page is 1-based; a zero
// Limit means the caller forgot to configure one and is rejected at the
// service layer.
type ListParams struct {
	Page          int
	Limit         int
	Search        string
	IsActive      *bool
	IsTraditional *bool
	CategoryID    string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// Offset returns the SQL offset for the requested page
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit
}

// CategoryRepository defines data access for categories
type CategoryRepository interface {
	// Create creates a new category
	Create(ctx context.Context, category *domain.Category) error
	// GetByID retrieves a category by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// List retrieves a page of categories plus the unpaged total
	List(ctx context.Context, params ListParams) ([]*domain.Category, int, error)
	// Update updates a category
	Update(ctx context.Context, category *domain.Category) error
	// Delete deletes a category
	Delete(ctx context.Context, id string) error
}

// DietaryTagRepository defines data access for dietary tags
type DietaryTagRepository interface {
	Create(ctx context.Context, tag *domain.DietaryTag) error
	GetByID(ctx context.Context, id string) (*domain.DietaryTag, error)
	List(ctx context.Context, params ListParams) ([]*domain.DietaryTag, int, error)
	Update(ctx context.Context, tag *domain.DietaryTag) error
}

// IngredientRepository defines data access for ingredients
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *domain.Ingredient) error
	GetByID(ctx context.Context, id string) (*domain.Ingredient, error)
	List(ctx context.Context, params ListParams) ([]*domain.Ingredient, int, error)
	Update(ctx context.Context, ingredient *domain.Ingredient) error
}

// MenuItemRepository defines data access for menu items
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context, params ListParams) ([]*domain.MenuItem, int, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}

// PackageRepository defines data access for catering packages
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, params ListParams) ([]*domain.Package, int, error)
	// Update replaces the base fields of a package
	Update(ctx context.Context, pkg *domain.Package) error
	// UpdateHall replaces the hall section only
	UpdateHall(ctx context.Context, id string, includesHall bool, hall *domain.Hall) error
	// UpdateItems replaces the food/drink selection only
	UpdateItems(ctx context.Context, id string, foodIDs, drinkIDs []string) error
	// UpdateServices replaces the included services only
	UpdateServices(ctx context.Context, id string, services []domain.Text) error
	// SetActive flips the activation flag
	SetActive(ctx context.Context, id string, isActive bool) error
}

// UserRepository defines data access for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
