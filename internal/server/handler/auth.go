package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/internal/server/middleware"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}

// AdminSignup handles POST /admin/signup
func (h *AuthHandler) AdminSignup(c *gin.Context) {
	h.signup(c, domain.RoleAdmin)
}

// CustomerSignup handles POST /customer/signup
func (h *AuthHandler) CustomerSignup(c *gin.Context) {
	h.signup(c, domain.RoleCustomer)
}

func (h *AuthHandler) signup(c *gin.Context, role string) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.ValidateEmail(); !ok {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.service.Signup(c.Request.Context(), &req, role)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// Me handles GET /user/me. The admin console polls this to detect
// expired sessions.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, user)
}
