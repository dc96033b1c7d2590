package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addiskitchen/platform/internal/server/domain"
)

// PostgresIngredientRepository implements IngredientRepository using PostgreSQL
type PostgresIngredientRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresIngredientRepository creates a new PostgresIngredientRepository
func NewPostgresIngredientRepository(pool *pgxpool.Pool) *PostgresIngredientRepository {
	return &PostgresIngredientRepository{pool: pool}
}

// Create creates a new ingredient
func (r *PostgresIngredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name_en, name_am, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		ingredient.ID,
		ingredient.Name.En,
		ingredient.Name.Am,
		ingredient.IsActive,
		ingredient.CreatedAt,
		ingredient.UpdatedAt,
	)
	return err
}

// GetByID retrieves an ingredient by ID
func (r *PostgresIngredientRepository) GetByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	query := `
		SELECT id, name_en, name_am, is_active, created_at, updated_at
		FROM ingredients
		WHERE id = $1
	`
	ingredient := &domain.Ingredient{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ingredient.ID,
		&ingredient.Name.En,
		&ingredient.Name.Am,
		&ingredient.IsActive,
		&ingredient.CreatedAt,
		&ingredient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ingredient, nil
}

// List retrieves a page of ingredients plus the unpaged total
func (r *PostgresIngredientRepository) List(ctx context.Context, params ListParams) ([]*domain.Ingredient, int, error) {
	where, args := nameFilter(params)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM ingredients"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name_en, name_am, is_active, created_at, updated_at
		FROM ingredients%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ingredients []*domain.Ingredient
	for rows.Next() {
		ingredient := &domain.Ingredient{}
		if err := rows.Scan(
			&ingredient.ID,
			&ingredient.Name.En,
			&ingredient.Name.Am,
			&ingredient.IsActive,
			&ingredient.CreatedAt,
			&ingredient.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, total, rows.Err()
}

// Update updates an ingredient
func (r *PostgresIngredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name_en = $2, name_am = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`
	ingredient.UpdatedAt = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		ingredient.ID,
		ingredient.Name.En,
		ingredient.Name.Am,
		ingredient.IsActive,
		ingredient.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}
