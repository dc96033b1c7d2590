package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/repository"
	"github.com/addiskitchen/platform/pkg/config"
	"github.com/addiskitchen/platform/pkg/logger"
	"github.com/addiskitchen/platform/pkg/response"
)

// PackageService defines business logic for catering packages. Hall,
// item and service sections are replaced independently so the admin
// wizard can save one step at a time.
type PackageService interface {
	Create(ctx context.Context, req *dto.PackageRequest) (*domain.Package, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*domain.Package, response.ListMeta, error)
	ListActive(ctx context.Context) ([]*domain.Package, error)
	Update(ctx context.Context, id string, req *dto.PackageRequest) (*domain.Package, error)
	UpdateHall(ctx context.Context, id string, req *dto.PackageHallRequest) (*domain.Package, error)
	UpdateItems(ctx context.Context, id string, req *dto.PackageItemsRequest) (*domain.Package, error)
	UpdateServices(ctx context.Context, id string, req *dto.PackageServicesRequest) (*domain.Package, error)
	SetActive(ctx context.Context, id string, isActive bool) (*domain.Package, error)
}

type packageService struct {
	repo         repository.PackageRepository
	defaultLimit int
	images       imagePolicy
	log          *logger.Logger
}

// NewPackageService creates a new PackageService
func NewPackageService(repo repository.PackageRepository, defaultLimit int, uploads config.UploadsConfig) PackageService {
	return &packageService{
		repo:         repo,
		defaultLimit: defaultLimit,
		images:       newImagePolicy(uploads),
		log:          logger.Get(),
	}
}

// resolveImages rewrites stored relative image paths into servable URLs
// before the package leaves the service.
func (s *packageService) resolveImages(pkg *domain.Package) *domain.Package {
	pkg.BannerImage = s.images.resolve(pkg.BannerImage)
	if pkg.Hall != nil {
		for i, img := range pkg.Hall.Images {
			pkg.Hall.Images[i] = s.images.resolve(img)
		}
	}
	return pkg
}

func (s *packageService) validateImages(banner string, hall *dto.HallPayload) error {
	if err := s.images.validate(banner); err != nil {
		return err
	}
	if hall != nil {
		for _, img := range hall.Images {
			if err := s.images.validate(img); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *packageService) Create(ctx context.Context, req *dto.PackageRequest) (*domain.Package, error) {
	if err := s.validateImages(req.BannerImage, req.Hall); err != nil {
		return nil, err
	}

	now := time.Now()
	pkg := &domain.Package{
		ID:             uuid.New().String(),
		Name:           req.Name.ToDomain(),
		Description:    req.Description.ToDomain(),
		BasePrice:      req.BasePrice,
		MinGuests:      req.MinGuests,
		MaxGuests:      req.MaxGuests,
		BannerImage:    req.BannerImage,
		IncludesHall:   req.IncludesHall,
		FoodIDs:        req.FoodIDs,
		DrinkIDs:       req.DrinkIDs,
		Services:       req.ServicesToDomain(),
		IsActive:       req.IsActive,
		IsCustom:       req.IsCustom,
		PerPerson:      req.PerPerson,
		PerPersonPrice: req.PerPersonPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.IncludesHall && req.Hall != nil {
		pkg.Hall = &domain.Hall{Capacity: req.Hall.Capacity, Images: req.Hall.Images}
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		s.log.Error("failed to create package", zap.Error(err))
		return nil, err
	}

	s.log.Info("package created",
		zap.String("package_id", pkg.ID),
		zap.Bool("is_custom", pkg.IsCustom))
	return pkg, nil
}

func (s *packageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveImages(pkg), nil
}

// fetch returns the package as stored, without image URL resolution.
// Write paths read through here so resolved URLs are never written back.
func (s *packageService) fetch(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *packageService) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Package, response.ListMeta, error) {
	params := query.ToParams(s.defaultLimit)
	if params.Limit <= 0 {
		return nil, response.ListMeta{}, ErrPageLimitRequired
	}

	packages, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, response.ListMeta{}, err
	}
	if packages == nil {
		packages = []*domain.Package{}
	}
	for _, pkg := range packages {
		s.resolveImages(pkg)
	}
	return packages, pageMeta(params, total), nil
}

// ListActive returns every active package for the storefront, unpaged.
func (s *packageService) ListActive(ctx context.Context) ([]*domain.Package, error) {
	active := true
	packages, _, err := s.repo.List(ctx, repository.ListParams{
		Page:     1,
		Limit:    1000,
		IsActive: &active,
	})
	if err != nil {
		return nil, err
	}
	if packages == nil {
		packages = []*domain.Package{}
	}
	for _, pkg := range packages {
		s.resolveImages(pkg)
	}
	return packages, nil
}

func (s *packageService) Update(ctx context.Context, id string, req *dto.PackageRequest) (*domain.Package, error) {
	if err := s.validateImages(req.BannerImage, req.Hall); err != nil {
		return nil, err
	}

	pkg, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name.ToDomain()
	pkg.Description = req.Description.ToDomain()
	pkg.BasePrice = req.BasePrice
	pkg.MinGuests = req.MinGuests
	pkg.MaxGuests = req.MaxGuests
	// An empty banner in an edit keeps the stored one
	if req.BannerImage != "" {
		pkg.BannerImage = req.BannerImage
	}
	pkg.IsCustom = req.IsCustom
	pkg.PerPerson = req.PerPerson
	pkg.PerPersonPrice = req.PerPersonPrice

	if err := s.repo.Update(ctx, pkg); err != nil {
		s.log.Error("failed to update package", zap.String("package_id", id), zap.Error(err))
		return nil, err
	}
	return s.resolveImages(pkg), nil
}

func (s *packageService) UpdateHall(ctx context.Context, id string, req *dto.PackageHallRequest) (*domain.Package, error) {
	if err := s.validateImages("", req.Hall); err != nil {
		return nil, err
	}

	var hall *domain.Hall
	if req.IncludesHall && req.Hall != nil {
		hall = &domain.Hall{Capacity: req.Hall.Capacity, Images: req.Hall.Images}
	}
	if err := s.repo.UpdateHall(ctx, id, req.IncludesHall, hall); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *packageService) UpdateItems(ctx context.Context, id string, req *dto.PackageItemsRequest) (*domain.Package, error) {
	if err := s.repo.UpdateItems(ctx, id, req.FoodIDs, req.DrinkIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *packageService) UpdateServices(ctx context.Context, id string, req *dto.PackageServicesRequest) (*domain.Package, error) {
	if err := s.repo.UpdateServices(ctx, id, req.ServicesToDomain()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *packageService) SetActive(ctx context.Context, id string, isActive bool) (*domain.Package, error) {
	if err := s.repo.SetActive(ctx, id, isActive); err != nil {
		return nil, err
	}
	s.log.Info("package activation changed",
		zap.String("package_id", id),
		zap.Bool("is_active", isActive))
	return s.GetByID(ctx, id)
}
