// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/app"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, registry *app.Registry, policy *auth.Policy, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(registry, policy, cfg)

	authGroup := rg.Group("/auth")
	{
		// Public auth endpoints
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		// Protected auth endpoints
		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupCatalogRoutes sets up the public product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, catalogSvc *catalog.Service) {
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupStorefrontRoutes sets up the session state and navigation routes
func SetupStorefrontRoutes(rg *gin.RouterGroup, registry *app.Registry, cfg *config.Config) {
	storefrontHandler := handlers.NewStorefrontHandler(registry)

	state := rg.Group("/state")
	state.Use(middleware.AuthMiddleware(cfg))
	{
		state.GET("", storefrontHandler.GetState)
		state.POST("/tab", storefrontHandler.SelectTab)
		state.POST("/back", storefrontHandler.Back)
		state.POST("/products/:id/select", storefrontHandler.SelectProduct)
		state.POST("/admin", storefrontHandler.OpenAdmin)
		state.POST("/admin/navigate", storefrontHandler.NavigateAdmin)
	}

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware(cfg))
	{
		cartGroup.POST("/items", storefrontHandler.AddToCart)
		cartGroup.DELETE("/items/:index", storefrontHandler.RemoveCartItem)
		cartGroup.POST("/buy-now", storefrontHandler.BuyNow)
		cartGroup.POST("/checkout", storefrontHandler.Checkout)
		cartGroup.POST("/payment", storefrontHandler.CompletePayment)
	}
}

// SetupFavoritesRoutes sets up the favorites routes
func SetupFavoritesRoutes(rg *gin.RouterGroup, registry *app.Registry, cfg *config.Config) {
	favoritesHandler := handlers.NewFavoritesHandler(registry)

	favorites := rg.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware(cfg))
	{
		favorites.GET("", favoritesHandler.ListFavorites)
		favorites.POST("/:id/toggle", favoritesHandler.ToggleFavorite)
	}
}

// SetupAdminRoutes sets up the back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, orders *order.Service, catalogSvc *catalog.Service, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(orders, catalogSvc)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/stats", adminHandler.GetOrderStats)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/products", adminHandler.ListProducts)
	}
}
