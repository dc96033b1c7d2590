package domain

import "time"

// Text is a bilingual value. Every customer-facing name and description
// carries both English and Amharic.
type Text struct {
	En string `json:"en"`
	Am string `json:"am"`
}

// Empty reports whether both translations are blank
func (t Text) Empty() bool {
	return t.En == "" && t.Am == ""
}

// Category groups menu items on the storefront
type Category struct {
	ID            string    `json:"id"`
	Name          Text      `json:"name"`
	Description   Text      `json:"description"`
	Image         string    `json:"image"`
	IsTraditional bool      `json:"isTraditional"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DietaryTag marks menu items (vegan, gluten-free, fasting, ...)
type DietaryTag struct {
	ID        string    `json:"id"`
	Name      Text      `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ingredient is a displayable component of a menu item
type Ingredient struct {
	ID        string    `json:"id"`
	Name      Text      `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuItem is a single orderable dish or drink
type MenuItem struct {
	ID            string    `json:"id"`
	Name          Text      `json:"name"`
	Description   Text      `json:"description"`
	Price         float64   `json:"price"`
	CategoryID    string    `json:"categoryId"`
	IngredientIDs []string  `json:"ingredientIds"`
	DietaryTagIDs []string  `json:"dietaryTagIds"`
	IsDrink       bool      `json:"isDrink"`
	Image         string    `json:"image"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Hall describes the optional venue attached to a catering package
type Hall struct {
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
}

// Package is a catering bundle: base info, optional hall, food and drink
// selection, included services, pricing.
type Package struct {
	ID             string    `json:"id"`
	Name           Text      `json:"name"`
	Description    Text      `json:"description"`
	BasePrice      float64   `json:"basePrice"`
	MinGuests      int       `json:"minGuests"`
	MaxGuests      int       `json:"maxGuests"`
	BannerImage    string    `json:"bannerImage"`
	IncludesHall   bool      `json:"includesHall"`
	Hall           *Hall     `json:"hall,omitempty"`
	FoodIDs        []string  `json:"foodIds"`
	DrinkIDs       []string  `json:"drinkIds"`
	Services       []Text    `json:"services"`
	IsActive       bool      `json:"isActive"`
	IsCustom       bool      `json:"isCustom"`
	PerPerson      bool      `json:"perPerson"`
	PerPersonPrice float64   `json:"perPersonPrice"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// User roles
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is an authenticated account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
