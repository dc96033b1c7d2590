package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// IngredientHandler handles ingredient endpoints
type IngredientHandler struct {
	service service.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(service service.IngredientService) *IngredientHandler {
	return &IngredientHandler{service: service}
}

// Create handles POST /admin/ingridients
func (h *IngredientHandler) Create(c *gin.Context) {
	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	ingredient, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, ingredient)
}

// List handles GET /admin/ingridients
func (h *IngredientHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	ingredients, meta, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.List(c, meta, "ingridients", ingredients)
}

// GetByID handles GET /admin/ingridients/:id
func (h *IngredientHandler) GetByID(c *gin.Context) {
	ingredient, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ingredient)
}

// Update handles PUT /admin/ingridients/:id
func (h *IngredientHandler) Update(c *gin.Context) {
	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	ingredient, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ingredient)
}
