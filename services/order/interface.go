package order

import (
	"context"

	"glambook/models"
)

// OrderService manages carts and checkout. Carts live in Redis under a
// TTL; orders are persisted documents. Payment capture is external: a
// checked-out order starts in NEW and an outside collaborator moves it to
// PAID.
type OrderService interface {
	GetCart(ctx context.Context, customerID string) (*models.Cart, error)
	AddToCart(ctx context.Context, customerID string, item models.CartItem) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, customerID, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context, customerID string) error

	Checkout(ctx context.Context, customerID string) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]models.Order, error)
	ListAllOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}
