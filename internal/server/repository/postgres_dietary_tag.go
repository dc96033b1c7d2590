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

// PostgresDietaryTagRepository implements DietaryTagRepository using PostgreSQL
type PostgresDietaryTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDietaryTagRepository creates a new PostgresDietaryTagRepository
func NewPostgresDietaryTagRepository(pool *pgxpool.Pool) *PostgresDietaryTagRepository {
	return &PostgresDietaryTagRepository{pool: pool}
}

// Create creates a new dietary tag
func (r *PostgresDietaryTagRepository) Create(ctx context.Context, tag *domain.DietaryTag) error {
	query := `
		INSERT INTO dietary_tags (id, name_en, name_am, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		tag.ID,
		tag.Name.En,
		tag.Name.Am,
		tag.IsActive,
		tag.CreatedAt,
		tag.UpdatedAt,
	)
	return err
}

// GetByID retrieves a dietary tag by ID
func (r *PostgresDietaryTagRepository) GetByID(ctx context.Context, id string) (*domain.DietaryTag, error) {
	query := `
		SELECT id, name_en, name_am, is_active, created_at, updated_at
		FROM dietary_tags
		WHERE id = $1
	`
	tag := &domain.DietaryTag{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tag.ID,
		&tag.Name.En,
		&tag.Name.Am,
		&tag.IsActive,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tag, nil
}

// List retrieves a page of dietary tags plus the unpaged total
func (r *PostgresDietaryTagRepository) List(ctx context.Context, params ListParams) ([]*domain.DietaryTag, int, error) {
	where, args := nameFilter(params)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dietary_tags"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name_en, name_am, is_active, created_at, updated_at
		FROM dietary_tags%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tags []*domain.DietaryTag
	for rows.Next() {
		tag := &domain.DietaryTag{}
		if err := rows.Scan(
			&tag.ID,
			&tag.Name.En,
			&tag.Name.Am,
			&tag.IsActive,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		tags = append(tags, tag)
	}
	return tags, total, rows.Err()
}

// Update updates a dietary tag
func (r *PostgresDietaryTagRepository) Update(ctx context.Context, tag *domain.DietaryTag) error {
	query := `
		UPDATE dietary_tags
		SET name_en = $2, name_am = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`
	tag.UpdatedAt = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		tag.ID,
		tag.Name.En,
		tag.Name.Am,
		tag.IsActive,
		tag.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrDietaryTagNotFound
	}
	return nil
}

// nameFilter builds the WHERE clause shared by name-only resources
// (dietary tags, ingredients).
func nameFilter(params ListParams) (string, []interface{}) {
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
