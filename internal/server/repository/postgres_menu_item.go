package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addiskitchen/platform/internal/server/domain"
)

// PostgresMenuItemRepository implements MenuItemRepository using PostgreSQL
type PostgresMenuItemRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMenuItemRepository creates a new PostgresMenuItemRepository
func NewPostgresMenuItemRepository(pool *pgxpool.Pool) *PostgresMenuItemRepository {
	return &PostgresMenuItemRepository{pool: pool}
}

// Create creates a new menu item
func (r *PostgresMenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name_en, name_am, description_en, description_am, price, category_id, ingredient_ids, dietary_tag_ids, is_drink, image, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name.En,
		item.Name.Am,
		item.Description.En,
		item.Description.Am,
		item.Price,
		item.CategoryID,
		item.IngredientIDs,
		item.DietaryTagIDs,
		item.IsDrink,
		item.Image,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

// GetByID retrieves a menu item by ID
func (r *PostgresMenuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name_en, name_am, description_en, description_am, price, category_id, ingredient_ids, dietary_tag_ids, is_drink, image, is_active, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`
	item := &domain.MenuItem{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name.En,
		&item.Name.Am,
		&item.Description.En,
		&item.Description.Am,
		&item.Price,
		&item.CategoryID,
		&item.IngredientIDs,
		&item.DietaryTagIDs,
		&item.IsDrink,
		&item.Image,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// List retrieves a page of menu items plus the unpaged total
func (r *PostgresMenuItemRepository) List(ctx context.Context, params ListParams) ([]*domain.MenuItem, int, error) {
	where, args := menuItemFilter(params)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name_en, name_am, description_en, description_am, price, category_id, ingredient_ids, dietary_tag_ids, is_drink, image, is_active, created_at, updated_at
		FROM menu_items%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		item := &domain.MenuItem{}
		if err := rows.Scan(
			&item.ID,
			&item.Name.En,
			&item.Name.Am,
			&item.Description.En,
			&item.Description.Am,
			&item.Price,
			&item.CategoryID,
			&item.IngredientIDs,
			&item.DietaryTagIDs,
			&item.IsDrink,
			&item.Image,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// Update updates a menu item
func (r *PostgresMenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name_en = $2, name_am = $3, description_en = $4, description_am = $5, price = $6, category_id = $7, ingredient_ids = $8, dietary_tag_ids = $9, is_drink = $10, image = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`
	item.UpdatedAt = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name.En,
		item.Name.Am,
		item.Description.En,
		item.Description.Am,
		item.Price,
		item.CategoryID,
		item.IngredientIDs,
		item.DietaryTagIDs,
		item.IsDrink,
		item.Image,
		item.IsActive,
		item.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// Delete deletes a menu item
func (r *PostgresMenuItemRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func menuItemFilter(params ListParams) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conds = append(conds, fmt.Sprintf("(name_en ILIKE $%d OR name_am ILIKE $%d)", len(args), len(args)))
	}
	if params.CategoryID != "" {
		args = append(args, params.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if params.CreatedFrom != nil {
		args = append(args, *params.CreatedFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if params.CreatedTo != nil {
		args = append(args, *params.CreatedTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
