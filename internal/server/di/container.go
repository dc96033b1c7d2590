// Package di wires the server's dependency graph: config, storage,
// repositories, services and handlers.
package di

import (
	"context"
	"fmt"
	"time"

	"github.com/addiskitchen/platform/internal/server/handler"
	"github.com/addiskitchen/platform/internal/server/repository"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/config"
	"github.com/addiskitchen/platform/pkg/database"
	"github.com/addiskitchen/platform/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *redis.Client

	AuthService       service.AuthService
	CategoryService   service.CategoryService
	DietaryTagService service.DietaryTagService
	IngredientService service.IngredientService
	MenuItemService   service.MenuItemService
	PackageService    service.PackageService

	Handlers *handler.Handlers
}

// New builds the dependency graph from configuration
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, &redis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	pool := db.Pool()
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	dietaryTagRepo := repository.NewPostgresDietaryTagRepository(pool)
	ingredientRepo := repository.NewPostgresIngredientRepository(pool)
	menuItemRepo := repository.NewPostgresMenuItemRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Package reads are hot on the storefront, so they go through Redis
	packageRepo := repository.NewCachedPackageRepository(
		repository.NewPostgresPackageRepository(pool),
		redisClient,
	)

	c := &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,

		AuthService:       service.NewAuthService(userRepo, cfg.JWT),
		CategoryService:   service.NewCategoryService(categoryRepo, cfg.Listing.CategoryLimit),
		DietaryTagService: service.NewDietaryTagService(dietaryTagRepo, cfg.Listing.DietaryTagLimit),
		IngredientService: service.NewIngredientService(ingredientRepo, cfg.Listing.IngredientLimit),
		MenuItemService:   service.NewMenuItemService(menuItemRepo, categoryRepo, cfg.Listing.MenuItemLimit),
		PackageService:    service.NewPackageService(packageRepo, cfg.Listing.PackageLimit, cfg.Uploads),
	}

	c.Handlers = &handler.Handlers{
		Auth:       handler.NewAuthHandler(c.AuthService),
		Category:   handler.NewCategoryHandler(c.CategoryService),
		DietaryTag: handler.NewDietaryTagHandler(c.DietaryTagService),
		Ingredient: handler.NewIngredientHandler(c.IngredientService),
		MenuItem:   handler.NewMenuItemHandler(c.MenuItemService),
		Package:    handler.NewPackageHandler(c.PackageService),
	}
	c.Handlers.Public = handler.NewPublicHandler(c.CategoryService, c.MenuItemService, c.PackageService)

	return c, nil
}

// Close releases all held resources
func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
