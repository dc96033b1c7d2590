package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// MenuItemHandler handles menu item endpoints
type MenuItemHandler struct {
	service service.MenuItemService
}

// NewMenuItemHandler creates a new MenuItemHandler
func NewMenuItemHandler(service service.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{service: service}
}

// Create handles POST /admin/menu-items
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	item, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, item)
}

// List handles GET /admin/menu-items
func (h *MenuItemHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, meta, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "menuItems", items)
}

// GetByID handles GET /admin/menu-items/:id
func (h *MenuItemHandler) GetByID(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, item)
}

// Update handles PUT /admin/menu-items/:id
func (h *MenuItemHandler) Update(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete handles DELETE /admin/menu-items/:id
func (h *MenuItemHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, "Menu item deleted", nil)
}
