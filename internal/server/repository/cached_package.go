package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/addiskitchen/platform/internal/server/domain"
)

const (
	// Cache key prefixes
	packageDetailKeyPrefix = "package:detail:"
	packageListKeyPrefix   = "package:list:"

	// Default TTL for package caches
	packageCacheTTL = 5 * time.Minute
)

// PackageCache is the slice of the redis client the cached repository
// needs. pkg/redis.Client satisfies it; tests use an in-memory fake.
type PackageCache interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// CachedPackageRepository wraps PackageRepository with Redis caching.
// Detail reads cache per id, list reads cache per parameter set; every
// write invalidates the touched id plus all list keys, so the
// storefront sees a mutation on its next read.
type CachedPackageRepository struct {
	repo  PackageRepository
	cache PackageCache
}

// NewCachedPackageRepository creates a new CachedPackageRepository
func NewCachedPackageRepository(repo PackageRepository, cache PackageCache) *CachedPackageRepository {
	return &CachedPackageRepository{
		repo:  repo,
		cache: cache,
	}
}

// cachedPackageList is the stored shape of one list page
type cachedPackageList struct {
	Packages []*domain.Package `json:"packages"`
	Total    int               `json:"total"`
}

// listCacheKey renders every list parameter into the key, so distinct
// filter combinations never collide.
func listCacheKey(params ListParams) string {
	var b strings.Builder
	b.WriteString(packageListKeyPrefix)
	fmt.Fprintf(&b, "%d:%d:%s:%s", params.Page, params.Limit, params.Search, params.CategoryID)
	b.WriteString(":" + boolKey(params.IsActive))
	b.WriteString(":" + boolKey(params.IsTraditional))
	b.WriteString(":" + timeKey(params.CreatedFrom))
	b.WriteString(":" + timeKey(params.CreatedTo))
	return b.String()
}

func boolKey(v *bool) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *v)
}

func timeKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Create creates a new package and invalidates list caches
func (r *CachedPackageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	if err := r.repo.Create(ctx, pkg); err != nil {
		return err
	}
	r.invalidateLists(ctx)
	return nil
}

// GetByID retrieves a package by ID with caching
func (r *CachedPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	cacheKey := packageDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var pkg domain.Package
		if err := json.Unmarshal([]byte(cached), &pkg); err == nil {
			return &pkg, nil
		}
	}

	pkg, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, nil
	}

	r.cacheValue(ctx, cacheKey, pkg)
	return pkg, nil
}

// List retrieves a page of packages with caching. Each parameter set
// gets its own key under the list prefix, which the write paths wipe
// wholesale.
func (r *CachedPackageRepository) List(ctx context.Context, params ListParams) ([]*domain.Package, int, error) {
	cacheKey := listCacheKey(params)
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var page cachedPackageList
		if err := json.Unmarshal([]byte(cached), &page); err == nil {
			return page.Packages, page.Total, nil
		}
	}

	packages, total, err := r.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	r.cacheValue(ctx, cacheKey, cachedPackageList{Packages: packages, Total: total})
	return packages, total, nil
}

// Update replaces the base fields and invalidates caches
func (r *CachedPackageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	if err := r.repo.Update(ctx, pkg); err != nil {
		return err
	}
	r.invalidate(ctx, pkg.ID)
	return nil
}

// UpdateHall replaces the hall section and invalidates caches
func (r *CachedPackageRepository) UpdateHall(ctx context.Context, id string, includesHall bool, hall *domain.Hall) error {
	if err := r.repo.UpdateHall(ctx, id, includesHall, hall); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// UpdateItems replaces the food/drink selection and invalidates caches
func (r *CachedPackageRepository) UpdateItems(ctx context.Context, id string, foodIDs, drinkIDs []string) error {
	if err := r.repo.UpdateItems(ctx, id, foodIDs, drinkIDs); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// UpdateServices replaces the included services and invalidates caches
func (r *CachedPackageRepository) UpdateServices(ctx context.Context, id string, services []domain.Text) error {
	if err := r.repo.UpdateServices(ctx, id, services); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// SetActive flips activation and invalidates caches
func (r *CachedPackageRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	if err := r.repo.SetActive(ctx, id, isActive); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedPackageRepository) cacheValue(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Cache failures are not surfaced, the database remains authoritative
	_ = r.cache.Set(ctx, key, data, packageCacheTTL).Err()
}

func (r *CachedPackageRepository) invalidate(ctx context.Context, id string) {
	_ = r.cache.Del(ctx, packageDetailKeyPrefix+id).Err()
	r.invalidateLists(ctx)
}

func (r *CachedPackageRepository) invalidateLists(ctx context.Context) {
	_ = r.cache.DeleteByPrefix(ctx, packageListKeyPrefix)
}
