package routes

import (
	"net/http"

	"glambook/handlers"
	"glambook/middleware"
	"glambook/models"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		api.GET("/me", hb.GetUserHandler)
		api.PUT("/me", hb.UpdateUserHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.POST("/logout", hb.RevokeTokenHandler)
	}
}

// RegisterArtistRoutes registers the artist directory and self-service
// profile management.
func RegisterArtistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/artists")
	{
		// Public browsing, including slot calendars.
		api.GET("", hb.ListArtistsHandler)
		api.GET("/:id", hb.GetArtistHandler)
		api.GET("/:id/slots", hb.GetSlotsHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		protected.POST("", middleware.RequireRole(models.RoleArtist), hb.CreateArtistHandler)
		protected.PATCH("/me", middleware.RequireRole(models.RoleArtist), hb.UpdateArtistHandler)
		protected.PUT("/me/availability", middleware.RequireRole(models.RoleArtist), hb.SetAvailabilityHandler)
		protected.GET("/me/bookings", middleware.RequireRole(models.RoleArtist), hb.ListArtistBookingsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the availability engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		api.POST("", hb.ReserveSlotHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterShopRoutes registers the product catalog, cart, and checkout.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.GET("", hb.ListProductsHandler)
		api.GET("/:id", hb.GetProductHandler)
	}

	cart := r.Group("/api/cart")
	{
		cart.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		cart.GET("", hb.GetCartHandler)
		cart.POST("/items", hb.AddToCartHandler)
		cart.DELETE("/items/:productId", hb.RemoveFromCartHandler)
		cart.POST("/checkout", hb.CheckoutHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		orders.GET("", hb.ListOrdersHandler)
	}
}

// RegisterReviewRoutes registers review creation.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterAdminRoutes registers the role-gated administration surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, false))
	api.Use(middleware.RequireRole(models.RoleAdmin))
	{
		api.POST("/products", hb.CreateProductHandler)
		api.PATCH("/products/:id", hb.UpdateProductHandler)
		api.DELETE("/products/:id", hb.DeleteProductHandler)

		api.PATCH("/artists/:id", hb.UpdateArtistHandler)
		api.DELETE("/artists/:id", hb.DeleteArtistHandler)
		api.PUT("/artists/:id/availability", hb.SetAvailabilityHandler)

		api.PATCH("/bookings/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/bookings/:id", hb.CancelBookingHandler)

		api.GET("/orders", hb.ListAllOrdersHandler)
		api.PATCH("/orders/:id/status", hb.UpdateOrderStatusHandler)

		api.DELETE("/reviews/:id", hb.DeleteReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
