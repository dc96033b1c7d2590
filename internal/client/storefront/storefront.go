// Package storefront serves the read-only public views: menu browsing
// by category and the package gallery with detail lookups.
package storefront

import (
	"context"

	"github.com/addiskitchen/platform/internal/client/gateway"
)

// Storefront is the public-facing read surface. Everything goes through
// the gateway's cache, so repeated browsing does not refetch.
type Storefront struct {
	gw *gateway.Gateway
}

// New creates a storefront over the gateway
func New(gw *gateway.Gateway) *Storefront {
	return &Storefront{gw: gw}
}

// Categories lists visible categories, optionally narrowed to
// traditional or non-traditional dishes.
func (s *Storefront) Categories(ctx context.Context, isTraditional *bool, page, limit int) (gateway.Page[gateway.Category], error) {
	return s.gw.PublicCategories(ctx, isTraditional, gateway.ListOptions{Page: page, Limit: limit})
}

// MenuItems lists visible menu items, optionally narrowed to a category
func (s *Storefront) MenuItems(ctx context.Context, categoryID string, page, limit int) (gateway.Page[gateway.MenuItem], error) {
	opts := gateway.ListOptions{Page: page, Limit: limit}
	if categoryID != "" {
		opts.Filters = map[string]string{"categoryId": categoryID}
	}
	return s.gw.PublicMenuItems(ctx, opts)
}

// Packages lists every active catering package for the gallery
func (s *Storefront) Packages(ctx context.Context) ([]gateway.Package, error) {
	return s.gw.PublicActivePackages(ctx)
}

// Package fetches one package for the detail view. A missing package
// is reported through gateway.IsNotFound so the page can render an
// in-page not-found state instead of failing.
func (s *Storefront) Package(ctx context.Context, id string) (*gateway.Package, error) {
	return s.gw.PublicPackage(ctx, id)
}
