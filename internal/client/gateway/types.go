package gateway

import "time"

// Text is a bilingual value as the API serves it
type Text struct {
	En string `json:"en"`
	Am string `json:"am"`
}

// Category is a menu category record
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

// DietaryTag is a dietary tag record
type DietaryTag struct {
	ID        string    `json:"id"`
	Name      Text      `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ingredient is an ingredient record
type Ingredient struct {
	ID        string    `json:"id"`
	Name      Text      `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuItem is a menu item record
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

// Hall is the optional venue section of a package
type Hall struct {
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
}

// Package is a catering package record
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

// User is an authenticated account as returned by /user/me
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// AuthSession is the login/signup result
type AuthSession struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
