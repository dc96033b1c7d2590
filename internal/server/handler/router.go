package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/middleware"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/logger"
	"github.com/addiskitchen/platform/pkg/response"
	"github.com/addiskitchen/platform/pkg/telemetry"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth       *AuthHandler
	Category   *CategoryHandler
	DietaryTag *DietaryTagHandler
	Ingredient *IngredientHandler
	MenuItem   *MenuItemHandler
	Package    *PackageHandler
	Public     *PublicHandler
}

// NewRouter builds the gin engine with every route mounted.
// The dietry-tags and ingridients spellings are load-bearing: the admin
// console requests them verbatim.
func NewRouter(h *Handlers, auth service.AuthService, serviceName string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Get()))
	router.Use(middleware.CORS())
	router.Use(telemetry.TracingMiddleware(serviceName))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	router.POST("/login", h.Auth.Login)
	router.POST("/admin/signup", h.Auth.AdminSignup)
	router.POST("/customer/signup", h.Auth.CustomerSignup)

	user := router.Group("/user", middleware.Auth(auth))
	{
		user.GET("/me", h.Auth.Me)
	}

	admin := router.Group("/admin", middleware.Auth(auth), middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/categories", h.Category.Create)
		admin.GET("/categories", h.Category.List)
		admin.GET("/categories/:id", h.Category.GetByID)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.POST("/dietry-tags", h.DietaryTag.Create)
		admin.GET("/dietry-tags", h.DietaryTag.List)
		admin.GET("/dietry-tags/:id", h.DietaryTag.GetByID)
		admin.PUT("/dietry-tags/:id", h.DietaryTag.Update)

		admin.POST("/ingridients", h.Ingredient.Create)
		admin.GET("/ingridients", h.Ingredient.List)
		admin.GET("/ingridients/:id", h.Ingredient.GetByID)
		admin.PUT("/ingridients/:id", h.Ingredient.Update)

		admin.POST("/menu-items", h.MenuItem.Create)
		admin.GET("/menu-items", h.MenuItem.List)
		admin.GET("/menu-items/:id", h.MenuItem.GetByID)
		admin.PUT("/menu-items/:id", h.MenuItem.Update)
		admin.DELETE("/menu-items/:id", h.MenuItem.Delete)

		admin.POST("/packages", h.Package.Create)
		admin.GET("/packages", h.Package.List)
		admin.GET("/packages/:id", h.Package.GetByID)
		admin.PUT("/packages/:id", h.Package.Update)
		admin.PATCH("/packages/:id", h.Package.SetActive)

		// Step-scoped package updates used by the creation wizard
		admin.PUT("/halls/packages/:id", h.Package.UpdateHall)
		admin.PUT("/items/packages/:id", h.Package.UpdateItems)
		admin.PUT("/services/packages/:id", h.Package.UpdateServices)
	}

	public := router.Group("/public")
	{
		public.GET("/categories", h.Public.ListCategories)
		public.GET("/menu-items", h.Public.ListMenuItems)
		public.GET("/active/packages", h.Public.ListActivePackages)
		public.GET("/packages/:id", h.Public.GetPackage)
	}

	return router
}
