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

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Create creates a new category
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name_en, name_am, description_en, description_am, image, is_traditional, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name.En,
		category.Name.Am,
		category.Description.En,
		category.Description.Am,
		category.Image,
		category.IsTraditional,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	)
	return err
}

// GetByID retrieves a category by ID
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name_en, name_am, description_en, description_am, image, is_traditional, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	category := &domain.Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name.En,
		&category.Name.Am,
		&category.Description.En,
		&category.Description.Am,
		&category.Image,
		&category.IsTraditional,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// List retrieves a page of categories plus the unpaged total
func (r *PostgresCategoryRepository) List(ctx context.Context, params ListParams) ([]*domain.Category, int, error) {
	where, args := categoryFilter(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM categories" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name_en, name_am, description_en, description_am, image, is_traditional, is_active, created_at, updated_at
		FROM categories%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(
			&category.ID,
			&category.Name.En,
			&category.Name.Am,
			&category.Description.En,
			&category.Description.Am,
			&category.Image,
			&category.IsTraditional,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		categories = append(categories, category)
	}
	return categories, total, rows.Err()
}

// Update updates a category
func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name_en = $2, name_am = $3, description_en = $4, description_am = $5, image = $6, is_traditional = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`
	category.UpdatedAt = time.Now()
	tag, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name.En,
		category.Name.Am,
		category.Description.En,
		category.Description.Am,
		category.Image,
		category.IsTraditional,
		category.IsActive,
		category.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete deletes a category
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func categoryFilter(params ListParams) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conds = append(conds, fmt.Sprintf("(name_en ILIKE $%d OR name_am ILIKE $%d)", len(args), len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if params.IsTraditional != nil {
		args = append(args, *params.IsTraditional)
		conds = append(conds, fmt.Sprintf("is_traditional = $%d", len(args)))
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
