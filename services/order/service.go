package order

import (
	"context"
	"fmt"
	"time"

	orderRepo "glambook/database/repository/order"
	productRepo "glambook/database/repository/product"
	"glambook/models"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultOrderService implements OrderService over the order and product
// repositories plus the cart store.
type DefaultOrderService struct {
	Orders   orderRepo.OrderRepository
	Products productRepo.ProductRepository
	Carts    CartStore
}

// Checkout snapshots the cart into an Order, decrements stock, and clears
// the cart. Item prices are captured at checkout time so later catalog
// edits do not rewrite past orders. If any line fails to reserve, stock
// already taken for earlier lines is restored and no order is written.
func (s *DefaultOrderService) Checkout(ctx context.Context, customerID string) (*models.Order, error) {
	cart, err := s.Carts.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	ids := make([]string, len(cart.Items))
	for i, it := range cart.Items {
		ids[i] = it.ProductID
	}
	products, err := s.Products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     models.OrderNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var reserved []models.OrderItem
	restock := func() {
		for _, it := range reserved {
			if err := s.Products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
				utils.GetLogger().Error("failed to restore stock after aborted checkout",
					zap.String("productID", it.ProductID), zap.Int("quantity", it.Quantity), zap.Error(err))
			}
		}
	}

	for _, it := range cart.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			restock()
			return nil, fmt.Errorf("product %s no longer exists", it.ProductID)
		}
		if err := s.Products.AdjustStock(ctx, p.ID, it.Quantity); err != nil {
			restock()
			return nil, err
		}
		line := models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
		}
		reserved = append(reserved, line)
		order.Items = append(order.Items, line)
	}
	order.Total = order.ComputeTotal()

	if err := s.Orders.Insert(ctx, order); err != nil {
		restock()
		return nil, err
	}
	if err := s.Carts.Clear(ctx, customerID); err != nil {
		utils.GetLogger().Warn("failed to clear cart after checkout", zap.Error(err))
	}

	utils.GetLogger().Info("order placed",
		zap.String("orderID", order.ID),
		zap.String("customerID", customerID),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Orders.GetByID(ctx, id)
}

func (s *DefaultOrderService) ListOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	return s.Orders.ListByCustomer(ctx, customerID)
}

func (s *DefaultOrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Orders.ListAll(ctx)
}

func (s *DefaultOrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("cannot move order %s from %s to %s", id, order.Status, status)
	}
	return s.Orders.UpdateStatus(ctx, id, status)
}
