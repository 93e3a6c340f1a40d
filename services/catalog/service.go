package catalog

import (
	"context"
	"fmt"
	"time"

	productRepo "glambook/database/repository/product"
	"glambook/models"

	"github.com/google/uuid"
)

// DefaultCatalogService implements CatalogService over the product repository.
type DefaultCatalogService struct {
	Repo productRepo.ProductRepository
}

func (s *DefaultCatalogService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}

	now := time.Now().UTC()
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.Repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := s.Repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultCatalogService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.Repo.List(ctx, filter)
}
