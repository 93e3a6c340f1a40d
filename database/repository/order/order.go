package orderRepo

import (
	"context"
	"errors"

	"glambook/models"
)

// ErrNotFound is returned when no order matches the given id.
var ErrNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for shop orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}
