package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// DietaryTagHandler handles dietary tag endpoints
type DietaryTagHandler struct {
	service service.DietaryTagService
}

// NewDietaryTagHandler creates a new DietaryTagHandler
func NewDietaryTagHandler(service service.DietaryTagService) *DietaryTagHandler {
	return &DietaryTagHandler{service: service}
}

// Create handles POST /admin/dietry-tags
func (h *DietaryTagHandler) Create(c *gin.Context) {
	var req dto.DietaryTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	tag, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, tag)
}

// List handles GET /admin/dietry-tags
func (h *DietaryTagHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	tags, meta, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "dietryTags", tags)
}

// GetByID handles GET /admin/dietry-tags/:id
func (h *DietaryTagHandler) GetByID(c *gin.Context) {
	tag, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tag)
}

// Update handles PUT /admin/dietry-tags/:id
func (h *DietaryTagHandler) Update(c *gin.Context) {
	var req dto.DietaryTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	tag, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tag)
}
