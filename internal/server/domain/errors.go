package domain

import "errors"

// Domain errors
var (
	// Catalog errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrDietaryTagNotFound = errors.New("dietary tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrPackageNotFound    = errors.New("package not found")

	// Upload errors
	ErrImageTooLarge = errors.New("image exceeds the maximum upload size")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
