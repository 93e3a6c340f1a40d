package productRepo

import (
	"context"
	"errors"

	"glambook/models"
)

// ErrNotFound is returned when no product matches the given id.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations for shop products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// AdjustStock decrements stock by qty, failing if fewer units remain.
	AdjustStock(ctx context.Context, id string, qty int) error

	// RestoreStock returns qty units, compensating a failed checkout.
	RestoreStock(ctx context.Context, id string, qty int) error
}
