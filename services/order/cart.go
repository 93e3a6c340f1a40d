package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glambook/models"
	"glambook/utils"

	"github.com/go-redis/redis/v8"
)

// CartStore persists customer carts. Carts are ephemeral; a store may
// drop untouched ones after a TTL.
type CartStore interface {
	Load(ctx context.Context, customerID string) (*models.Cart, error)
	Store(ctx context.Context, cart *models.Cart) error
	Clear(ctx context.Context, customerID string) error
}

// RedisCartStore keeps carts as JSON blobs in Redis under CartTTL.
type RedisCartStore struct {
	Client *redis.Client
}

func cartKey(customerID string) string {
	return utils.CartCachePrefix + customerID
}

func (s *RedisCartStore) Load(ctx context.Context, customerID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(customerID)).Result()
	if err == redis.Nil {
		return &models.Cart{CustomerID: customerID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Store(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(cart.CustomerID), data, utils.CartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, customerID string) error {
	if err := s.Client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultOrderService) GetCart(ctx context.Context, customerID string) (*models.Cart, error) {
	return s.Carts.Load(ctx, customerID)
}

func (s *DefaultOrderService) AddToCart(ctx context.Context, customerID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.Products.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock(item.Quantity) {
		return nil, fmt.Errorf("only %d units of %s in stock", product.Stock, product.Name)
	}

	cart, err := s.Carts.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity = item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}

	if err := s.Carts.Store(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultOrderService) RemoveFromCart(ctx context.Context, customerID, productID string) (*models.Cart, error) {
	cart, err := s.Carts.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	cart.Items = items

	if err := s.Carts.Store(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultOrderService) ClearCart(ctx context.Context, customerID string) error {
	return s.Carts.Clear(ctx, customerID)
}
