// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/urbannest/storefront/internal/config"
	"github.com/urbannest/storefront/internal/handlers"
	"github.com/urbannest/storefront/internal/middleware"
	"github.com/urbannest/storefront/internal/services"
	"github.com/urbannest/storefront/internal/store"
	"github.com/urbannest/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, st store.Store) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(logrus.WithField("component", "catalog"))
	hub := services.NewHub(catalogService, st, logrus.WithField("component", "hub"))
	authService := services.NewAuthService(db, cfg)
	identity := services.NewAuthIdentity(authService)
	checkoutService := services.NewCheckoutService(st, identity, logrus.WithField("component", "checkout"))

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(hub)
	wishlistHandler := handlers.NewWishlistHandler(hub)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, hub)
	authHandler := handlers.NewAuthHandler(authService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.Session())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/detail", productHandler.GetProductDetail)
		}
		v1.GET("/categories", productHandler.GetCategories)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.GET("/count", cartHandler.GetItemCount)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("/toggle", wishlistHandler.ToggleItem)
			wishlist.DELETE("/items/:id", wishlistHandler.RemoveItem)
			wishlist.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
			wishlist.DELETE("", wishlistHandler.ClearWishlist)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.OptionalAuth())
		{
			checkout.POST("/initiate", checkoutHandler.InitiateCheckout)
			checkout.POST("/validate-address", checkoutHandler.ValidateAddress)
			checkout.POST("/shipping", checkoutHandler.CalculateShipping)
			checkout.POST("/submit", middleware.CheckoutRateLimit(), checkoutHandler.SubmitOrder)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.OptionalAuth())
		{
			orders.GET("", checkoutHandler.GetOrders)
			orders.GET("/:id", checkoutHandler.GetOrder)
		}
	}

	return r
}
