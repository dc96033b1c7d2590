package dto

import (
	"regexp"

	"github.com/addiskitchen/platform/internal/server/domain"
)

// TextPayload carries a bilingual value
type TextPayload struct {
	En string `json:"en"`
	Am string `json:"am"`
}

// ToDomain converts the payload to a domain.Text
func (t TextPayload) ToDomain() domain.Text {
	return domain.Text{En: t.En, Am: t.Am}
}

func validateName(name TextPayload) (bool, string) {
	if name.En == "" {
		return false, "English name is required"
	}
	if name.Am == "" {
		return false, "Amharic name is required"
	}
	if len(name.En) > 100 || len(name.Am) > 300 {
		return false, "Name is too long"
	}
	return true, ""
}

// CategoryRequest creates or replaces a category
type CategoryRequest struct {
	Name          TextPayload `json:"name" binding:"required"`
	Description   TextPayload `json:"description"`
	Image         string      `json:"image"`
	IsTraditional bool        `json:"isTraditional"`
	IsActive      bool        `json:"isActive"`
}

// Validate checks the fields binding tags cannot express
func (r *CategoryRequest) Validate() (bool, string) {
	return validateName(r.Name)
}

// DietaryTagRequest creates or replaces a dietary tag
type DietaryTagRequest struct {
	Name     TextPayload `json:"name" binding:"required"`
	IsActive bool        `json:"isActive"`
}

func (r *DietaryTagRequest) Validate() (bool, string) {
	return validateName(r.Name)
}

// IngredientRequest creates or replaces an ingredient
type IngredientRequest struct {
	Name     TextPayload `json:"name" binding:"required"`
	IsActive bool        `json:"isActive"`
}

func (r *IngredientRequest) Validate() (bool, string) {
	return validateName(r.Name)
}

// MenuItemRequest creates or replaces a menu item
type MenuItemRequest struct {
	Name          TextPayload `json:"name" binding:"required"`
	Description   TextPayload `json:"description"`
	Price         float64     `json:"price"`
	CategoryID    string      `json:"categoryId" binding:"required"`
	IngredientIDs []string    `json:"ingredientIds"`
	DietaryTagIDs []string    `json:"dietaryTagIds"`
	IsDrink       bool        `json:"isDrink"`
	Image         string      `json:"image"`
	IsActive      bool        `json:"isActive"`
}

func (r *MenuItemRequest) Validate() (bool, string) {
	if ok, msg := validateName(r.Name); !ok {
		return false, msg
	}
	if r.Price <= 0 {
		return false, "Price must be positive"
	}
	return true, ""
}

// HallPayload carries the optional venue section of a package
type HallPayload struct {
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
}

// PackageRequest creates a package or replaces its base fields
type PackageRequest struct {
	Name           TextPayload   `json:"name" binding:"required"`
	Description    TextPayload   `json:"description"`
	BasePrice      float64       `json:"basePrice"`
	MinGuests      int           `json:"minGuests"`
	MaxGuests      int           `json:"maxGuests"`
	BannerImage    string        `json:"bannerImage"`
	IncludesHall   bool          `json:"includesHall"`
	Hall           *HallPayload  `json:"hall,omitempty"`
	FoodIDs        []string      `json:"foodIds"`
	DrinkIDs       []string      `json:"drinkIds"`
	Services       []TextPayload `json:"services"`
	IsActive       bool          `json:"isActive"`
	IsCustom       bool          `json:"isCustom"`
	PerPerson      bool          `json:"perPerson"`
	PerPersonPrice float64       `json:"perPersonPrice"`
}

// Validate checks the base section. requireBanner is true on create; in
// edit mode the server keeps the stored banner when none is sent.
func (r *PackageRequest) Validate(requireBanner bool) (bool, string) {
	if ok, msg := validateName(r.Name); !ok {
		return false, msg
	}
	if r.BasePrice <= 0 {
		return false, "Base price must be positive"
	}
	if r.MinGuests > 0 && r.MaxGuests > 0 && r.MinGuests > r.MaxGuests {
		return false, "Minimum guests cannot exceed maximum guests"
	}
	if requireBanner && r.BannerImage == "" {
		return false, "Banner image is required"
	}
	if r.PerPerson && r.PerPersonPrice <= 0 {
		return false, "Per-person price must be positive"
	}
	if r.IncludesHall && (r.Hall == nil || r.Hall.Capacity <= 0) {
		return false, "Hall capacity must be positive"
	}
	return true, ""
}

// ServicesToDomain converts service payloads
func (r *PackageRequest) ServicesToDomain() []domain.Text {
	return textsToDomain(r.Services)
}

func textsToDomain(payloads []TextPayload) []domain.Text {
	if payloads == nil {
		return nil
	}
	out := make([]domain.Text, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.ToDomain())
	}
	return out
}

// PackageHallRequest replaces the hall section of a package
type PackageHallRequest struct {
	IncludesHall bool         `json:"includesHall"`
	Hall         *HallPayload `json:"hall,omitempty"`
}

func (r *PackageHallRequest) Validate() (bool, string) {
	if r.IncludesHall && (r.Hall == nil || r.Hall.Capacity <= 0) {
		return false, "Hall capacity must be positive"
	}
	return true, ""
}

// PackageItemsRequest replaces the food/drink selection of a package
type PackageItemsRequest struct {
	FoodIDs  []string `json:"foodIds"`
	DrinkIDs []string `json:"drinkIds"`
}

// PackageServicesRequest replaces the included services of a package
type PackageServicesRequest struct {
	Services []TextPayload `json:"services" binding:"required"`
}

// ServicesToDomain converts service payloads
func (r *PackageServicesRequest) ServicesToDomain() []domain.Text {
	return textsToDomain(r.Services)
}

// SignupRequest registers an account (admin or customer route decides the role)
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,min=2"`
}

// ValidateEmail validates email format more strictly than the binding tag
func (r *SignupRequest) ValidateEmail() (bool, string) {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// LoginRequest authenticates an account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
