package catalog

import (
	"context"

	"glambook/models"
)

// CatalogService manages the product shop. Writes are admin-gated at the
// route layer.
type CatalogService interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
}
