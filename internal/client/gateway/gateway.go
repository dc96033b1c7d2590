package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Tag types used across the cache
const (
	TagCategory   = "Category"
	TagDietaryTag = "DietaryTag"
	TagIngredient = "Ingredient"
	TagMenuItem   = "MenuItem"
	TagPackage    = "Package"
	TagUser       = "User"
)

// Gateway bundles the typed resources of the platform API behind one
// client. The dietry-tags and ingridients path segments match the
// server's routes verbatim.
type Gateway struct {
	client *Client

	Categories  *Resource[Category]
	DietaryTags *Resource[DietaryTag]
	Ingredients *Resource[Ingredient]
	MenuItems   *Resource[MenuItem]
	Packages    *Resource[Package]
}

// New creates a gateway over the given client
func New(client *Client) *Gateway {
	return &Gateway{
		client:      client,
		Categories:  NewResource[Category](client, "/admin/categories", "categories", TagCategory),
		DietaryTags: NewResource[DietaryTag](client, "/admin/dietry-tags", "dietryTags", TagDietaryTag),
		Ingredients: NewResource[Ingredient](client, "/admin/ingridients", "ingridients", TagIngredient),
		MenuItems:   NewResource[MenuItem](client, "/admin/menu-items", "menuItems", TagMenuItem),
		Packages:    NewResource[Package](client, "/admin/packages", "packages", TagPackage),
	}
}

// Client returns the underlying HTTP client
func (g *Gateway) Client() *Client {
	return g.client
}

// UpdatePackageHall replaces the hall section of a package
func (g *Gateway) UpdatePackageHall(ctx context.Context, id string, body interface{}) (*Package, error) {
	data, err := g.client.mutate(ctx, http.MethodPut, "/admin/halls/packages/"+id, nil, body, EntityTag(TagPackage, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[Package](data)
}

// UpdatePackageItems replaces the food/drink selection of a package
func (g *Gateway) UpdatePackageItems(ctx context.Context, id string, body interface{}) (*Package, error) {
	data, err := g.client.mutate(ctx, http.MethodPut, "/admin/items/packages/"+id, nil, body, EntityTag(TagPackage, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[Package](data)
}

// UpdatePackageServices replaces the included services of a package
func (g *Gateway) UpdatePackageServices(ctx context.Context, id string, body interface{}) (*Package, error) {
	data, err := g.client.mutate(ctx, http.MethodPut, "/admin/services/packages/"+id, nil, body, EntityTag(TagPackage, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[Package](data)
}

// SetPackageActive flips a package's activation flag
func (g *Gateway) SetPackageActive(ctx context.Context, id string, isActive bool) (*Package, error) {
	query := url.Values{"isActive": {strconv.FormatBool(isActive)}}
	data, err := g.client.mutate(ctx, http.MethodPatch, "/admin/packages/"+id, query, nil, EntityTag(TagPackage, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[Package](data)
}

// Login authenticates and returns the session. Persisting the token is
// the caller's job; the gateway only reads it back through TokenStore.
func (g *Gateway) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := g.client.do(ctx, http.MethodPost, "/login", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeEntity[AuthSession](data)
}

// Signup registers an account on the admin or customer route
func (g *Gateway) Signup(ctx context.Context, route, email, password, name string) (*AuthSession, error) {
	if route != "/admin/signup" && route != "/customer/signup" {
		return nil, fmt.Errorf("unknown signup route: %s", route)
	}
	body := map[string]string{"email": email, "password": password, "name": name}
	data, err := g.client.do(ctx, http.MethodPost, route, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeEntity[AuthSession](data)
}

// Me fetches the signed-in user. Never cached: this is the auth poll.
func (g *Gateway) Me(ctx context.Context) (*User, error) {
	data, err := g.client.do(ctx, http.MethodGet, "/user/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[User](data)
}

// PublicCategories lists active categories for the storefront.
// isTraditional of nil means both kinds.
func (g *Gateway) PublicCategories(ctx context.Context, isTraditional *bool, opts ListOptions) (Page[Category], error) {
	query := opts.Query()
	if isTraditional != nil {
		query.Set("isTraditional", strconv.FormatBool(*isTraditional))
	}
	data, err := g.client.getCached(ctx, "/public/categories", query, CollectionTag(TagCategory))
	if err != nil {
		return Page[Category]{}, err
	}
	return decodePage[Category](data, "categories")
}

// PublicMenuItems lists active menu items for the storefront
func (g *Gateway) PublicMenuItems(ctx context.Context, opts ListOptions) (Page[MenuItem], error) {
	data, err := g.client.getCached(ctx, "/public/menu-items", opts.Query(), CollectionTag(TagMenuItem))
	if err != nil {
		return Page[MenuItem]{}, err
	}
	return decodePage[MenuItem](data, "menuItems")
}

// PublicActivePackages lists every active package for the storefront
func (g *Gateway) PublicActivePackages(ctx context.Context) ([]Package, error) {
	data, err := g.client.getCached(ctx, "/public/active/packages", nil, CollectionTag(TagPackage))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Packages []Package `json:"packages"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return payload.Packages, nil
}

// PublicPackage fetches one package for the storefront detail view
func (g *Gateway) PublicPackage(ctx context.Context, id string) (*Package, error) {
	data, err := g.client.getCached(ctx, "/public/packages/"+id, nil, EntityTag(TagPackage, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[Package](data)
}
