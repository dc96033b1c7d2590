package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addiskitchen/platform/internal/server/domain"
)

// PostgresPackageRepository implements PackageRepository using PostgreSQL
type PostgresPackageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPackageRepository creates a new PostgresPackageRepository
func NewPostgresPackageRepository(pool *pgxpool.Pool) *PostgresPackageRepository {
	return &PostgresPackageRepository{pool: pool}
}

const packageColumns = `id, name_en, name_am, description_en, description_am, base_price, min_guests, max_guests, banner_image, includes_hall, hall_capacity, hall_images, food_ids, drink_ids, services, is_active, is_custom, per_person, per_person_price, created_at, updated_at`

// Create creates a new package
func (r *PostgresPackageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	services, err := json.Marshal(pkg.Services)
	if err != nil {
		return fmt.Errorf("failed to marshal services: %w", err)
	}

	hallCapacity := 0
	var hallImages []string
	if pkg.Hall != nil {
		hallCapacity = pkg.Hall.Capacity
		hallImages = pkg.Hall.Images
	}

	query := `
		INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err = r.pool.Exec(ctx, query,
		pkg.ID,
		pkg.Name.En,
		pkg.Name.Am,
		pkg.Description.En,
		pkg.Description.Am,
		pkg.BasePrice,
		pkg.MinGuests,
		pkg.MaxGuests,
		pkg.BannerImage,
		pkg.IncludesHall,
		hallCapacity,
		hallImages,
		pkg.FoodIDs,
		pkg.DrinkIDs,
		services,
		pkg.IsActive,
		pkg.IsCustom,
		pkg.PerPerson,
		pkg.PerPersonPrice,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	return err
}

func scanPackage(row pgx.Row) (*domain.Package, error) {
	pkg := &domain.Package{}
	var hallCapacity int
	var hallImages []string
	var services []byte

	err := row.Scan(
		&pkg.ID,
		&pkg.Name.En,
		&pkg.Name.Am,
		&pkg.Description.En,
		&pkg.Description.Am,
		&pkg.BasePrice,
		&pkg.MinGuests,
		&pkg.MaxGuests,
		&pkg.BannerImage,
		&pkg.IncludesHall,
		&hallCapacity,
		&hallImages,
		&pkg.FoodIDs,
		&pkg.DrinkIDs,
		&services,
		&pkg.IsActive,
		&pkg.IsCustom,
		&pkg.PerPerson,
		&pkg.PerPersonPrice,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pkg.IncludesHall {
		pkg.Hall = &domain.Hall{Capacity: hallCapacity, Images: hallImages}
	}
	if len(services) > 0 {
		if err := json.Unmarshal(services, &pkg.Services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal services: %w", err)
		}
	}
	return pkg, nil
}

// GetByID retrieves a package by ID
func (r *PostgresPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := "SELECT " + packageColumns + " FROM packages WHERE id = $1"
	pkg, err := scanPackage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return pkg, nil
}

// List retrieves a page of packages plus the unpaged total
func (r *PostgresPackageRepository) List(ctx context.Context, params ListParams) ([]*domain.Package, int, error) {
	where, args := nameFilter(params)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM packages"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM packages%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		packageColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var packages []*domain.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, 0, err
		}
		packages = append(packages, pkg)
	}
	return packages, total, rows.Err()
}

// Update replaces the base fields of a package
func (r *PostgresPackageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	query := `
		UPDATE packages
		SET name_en = $2, name_am = $3, description_en = $4, description_am = $5, base_price = $6, min_guests = $7, max_guests = $8, banner_image = $9, is_custom = $10, per_person = $11, per_person_price = $12, updated_at = $13
		WHERE id = $1
	`
	pkg.UpdatedAt = time.Now()
	cmd, err := r.pool.Exec(ctx, query,
		pkg.ID,
		pkg.Name.En,
		pkg.Name.Am,
		pkg.Description.En,
		pkg.Description.Am,
		pkg.BasePrice,
		pkg.MinGuests,
		pkg.MaxGuests,
		pkg.BannerImage,
		pkg.IsCustom,
		pkg.PerPerson,
		pkg.PerPersonPrice,
		pkg.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

// UpdateHall replaces the hall section only
func (r *PostgresPackageRepository) UpdateHall(ctx context.Context, id string, includesHall bool, hall *domain.Hall) error {
	hallCapacity := 0
	var hallImages []string
	if hall != nil {
		hallCapacity = hall.Capacity
		hallImages = hall.Images
	}

	query := `
		UPDATE packages
		SET includes_hall = $2, hall_capacity = $3, hall_images = $4, updated_at = $5
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, includesHall, hallCapacity, hallImages, time.Now())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

// UpdateItems replaces the food/drink selection only
func (r *PostgresPackageRepository) UpdateItems(ctx context.Context, id string, foodIDs, drinkIDs []string) error {
	query := `
		UPDATE packages
		SET food_ids = $2, drink_ids = $3, updated_at = $4
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, foodIDs, drinkIDs, time.Now())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

// UpdateServices replaces the included services only
func (r *PostgresPackageRepository) UpdateServices(ctx context.Context, id string, services []domain.Text) error {
	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("failed to marshal services: %w", err)
	}

	query := `
		UPDATE packages
		SET services = $2, updated_at = $3
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, data, time.Now())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

// SetActive flips the activation flag
func (r *PostgresPackageRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	query := `
		UPDATE packages
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, isActive, time.Now())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}
