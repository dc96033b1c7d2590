package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// PackageHandler handles catering package endpoints. The hall, items and
// services sections have dedicated update routes because the admin wizard
// saves them step by step.
type PackageHandler struct {
	service service.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(service service.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// Create handles POST /admin/packages
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(true); !ok {
		response.BadRequest(c, msg)
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, pkg)
}

// List handles GET /admin/packages
func (h *PackageHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	packages, meta, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "packages", packages)
}

// GetByID handles GET /admin/packages/:id
func (h *PackageHandler) GetByID(c *gin.Context) {
	pkg, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}

// Update handles PUT /admin/packages/:id (base fields only)
func (h *PackageHandler) Update(c *gin.Context) {
	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(false); !ok {
		response.BadRequest(c, msg)
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}

// UpdateHall handles PUT /admin/halls/packages/:id
func (h *PackageHandler) UpdateHall(c *gin.Context) {
	var req dto.PackageHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	pkg, err := h.service.UpdateHall(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}

// UpdateItems handles PUT /admin/items/packages/:id
func (h *PackageHandler) UpdateItems(c *gin.Context) {
	var req dto.PackageItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pkg, err := h.service.UpdateItems(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}

// UpdateServices handles PUT /admin/services/packages/:id
func (h *PackageHandler) UpdateServices(c *gin.Context) {
	var req dto.PackageServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pkg, err := h.service.UpdateServices(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}

// SetActive handles PATCH /admin/packages/:id?isActive=true|false
func (h *PackageHandler) SetActive(c *gin.Context) {
	isActive := c.Query("isActive")
	if isActive != "true" && isActive != "false" {
		response.BadRequest(c, "isActive query parameter must be true or false")
		return
	}

	pkg, err := h.service.SetActive(c.Request.Context(), c.Param("id"), isActive == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pkg)
}
