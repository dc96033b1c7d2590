package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// PublicHandler serves the unauthenticated storefront reads
type PublicHandler struct {
	categories service.CategoryService
	menuItems  service.MenuItemService
	packages   service.PackageService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(categories service.CategoryService, menuItems service.MenuItemService, packages service.PackageService) *PublicHandler {
	return &PublicHandler{
		categories: categories,
		menuItems:  menuItems,
		packages:   packages,
	}
}

// ListCategories handles GET /public/categories?isTraditional=true|false.
// Only active categories are shown to visitors.
func (h *PublicHandler) ListCategories(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	query.IsActive = "true"

	categories, meta, err := h.categories.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "categories", categories)
}

// ListMenuItems handles GET /public/menu-items?categoryId=...
func (h *PublicHandler) ListMenuItems(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	query.IsActive = "true"

	items, meta, err := h.menuItems.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "menuItems", items)
}

// ListActivePackages handles GET /public/active/packages
func (h *PublicHandler) ListActivePackages(c *gin.Context) {
	packages, err := h.packages.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"packages": packages})
}

// GetPackage handles GET /public/packages/:id
func (h *PublicHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packages.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}
