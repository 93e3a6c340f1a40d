package handlers

import (
	userRepoPkg "glambook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserHandler          gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc
	RevokeTokenHandler      gin.HandlerFunc

	// Artist endpoints
	ListArtistsHandler     gin.HandlerFunc
	GetArtistHandler       gin.HandlerFunc
	CreateArtistHandler    gin.HandlerFunc
	UpdateArtistHandler    gin.HandlerFunc
	DeleteArtistHandler    gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	GetSlotsHandler            gin.HandlerFunc
	ReserveSlotHandler         gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	ListArtistBookingsHandler  gin.HandlerFunc

	// Product endpoints
	ListProductsHandler  gin.HandlerFunc
	GetProductHandler    gin.HandlerFunc
	CreateProductHandler gin.HandlerFunc
	UpdateProductHandler gin.HandlerFunc
	DeleteProductHandler gin.HandlerFunc

	// Cart and order endpoints
	GetCartHandler           gin.HandlerFunc
	AddToCartHandler         gin.HandlerFunc
	RemoveFromCartHandler    gin.HandlerFunc
	CheckoutHandler          gin.HandlerFunc
	ListOrdersHandler        gin.HandlerFunc
	ListAllOrdersHandler     gin.HandlerFunc
	UpdateOrderStatusHandler gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc
	DeleteReviewHandler gin.HandlerFunc
}
