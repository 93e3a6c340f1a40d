package order

import (
	"context"
	"testing"

	orderRepo "glambook/database/repository/order"
	productRepo "glambook/database/repository/product"
	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	carts map[string]*models.Cart
}

func (s *memCartStore) Load(_ context.Context, customerID string) (*models.Cart, error) {
	if cart, ok := s.carts[customerID]; ok {
		return cart, nil
	}
	return &models.Cart{CustomerID: customerID, Items: []models.CartItem{}}, nil
}

func (s *memCartStore) Store(_ context.Context, cart *models.Cart) error {
	s.carts[cart.CustomerID] = cart
	return nil
}

func (s *memCartStore) Clear(_ context.Context, customerID string) error {
	delete(s.carts, customerID)
	return nil
}

type fakeProducts struct {
	products map[string]*models.Product
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, productRepo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) GetByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProducts) List(_ context.Context, _ models.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) AdjustStock(_ context.Context, id string, qty int) error {
	p, ok := f.products[id]
	if !ok {
		return productRepo.ErrNotFound
	}
	if p.Stock < qty {
		return productRepo.ErrNotFound
	}
	p.Stock -= qty
	return nil
}

func (f *fakeProducts) RestoreStock(_ context.Context, id string, qty int) error {
	p, ok := f.products[id]
	if !ok {
		return productRepo.ErrNotFound
	}
	p.Stock += qty
	return nil
}

type fakeOrders struct {
	orders map[string]*models.Order
}

func (f *fakeOrders) Insert(_ context.Context, o *models.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, orderRepo.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) ListByCustomer(_ context.Context, customerID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, orderRepo.ErrNotFound
	}
	o.Status = status
	return o, nil
}

func newTestOrderService() (*DefaultOrderService, *fakeProducts, *fakeOrders, *memCartStore) {
	products := &fakeProducts{products: map[string]*models.Product{
		"p1": {ID: "p1", Name: "Velvet Matte", Price: 18.50, Stock: 10},
		"p2": {ID: "p2", Name: "Dewy Base", Price: 32.00, Stock: 2},
	}}
	orders := &fakeOrders{orders: map[string]*models.Order{}}
	carts := &memCartStore{carts: map[string]*models.Cart{}}
	svc := &DefaultOrderService{Orders: orders, Products: products, Carts: carts}
	return svc, products, orders, carts
}

func seedCart(carts *memCartStore, customerID string, items ...models.CartItem) {
	carts.carts[customerID] = &models.Cart{CustomerID: customerID, Items: items}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots prices and clears the cart", func(t *testing.T) {
		svc, products, orders, carts := newTestOrderService()
		seedCart(carts, "c1",
			models.CartItem{ProductID: "p1", Quantity: 2},
			models.CartItem{ProductID: "p2", Quantity: 1},
		)

		placed, err := svc.Checkout(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, models.OrderNew, placed.Status)
		assert.InDelta(t, 69.00, placed.Total, 0.0001)
		assert.Equal(t, 8, products.products["p1"].Stock)
		assert.Equal(t, 1, products.products["p2"].Stock)
		assert.Len(t, orders.orders, 1)
		assert.NotContains(t, carts.carts, "c1")
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc, _, _, _ := newTestOrderService()

		_, err := svc.Checkout(ctx, "c1")
		assert.Error(t, err)
	})

	t.Run("insufficient stock on a later line restores earlier decrements", func(t *testing.T) {
		svc, products, orders, carts := newTestOrderService()
		seedCart(carts, "c1",
			models.CartItem{ProductID: "p1", Quantity: 2},
			models.CartItem{ProductID: "p2", Quantity: 5}, // only 2 in stock
		)

		_, err := svc.Checkout(ctx, "c1")
		require.Error(t, err)
		assert.Equal(t, 10, products.products["p1"].Stock)
		assert.Equal(t, 2, products.products["p2"].Stock)
		assert.Empty(t, orders.orders)
		assert.Contains(t, carts.carts, "c1", "cart must survive a failed checkout")
	})

	t.Run("product deleted after carting restores earlier decrements", func(t *testing.T) {
		svc, products, orders, carts := newTestOrderService()
		seedCart(carts, "c1",
			models.CartItem{ProductID: "p1", Quantity: 3},
			models.CartItem{ProductID: "ghost", Quantity: 1},
		)

		_, err := svc.Checkout(ctx, "c1")
		require.Error(t, err)
		assert.Equal(t, 10, products.products["p1"].Stock)
		assert.Empty(t, orders.orders)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, svc *DefaultOrderService, carts *memCartStore) *models.Order {
		t.Helper()
		seedCart(carts, "c1", models.CartItem{ProductID: "p1", Quantity: 1})
		placed, err := svc.Checkout(ctx, "c1")
		require.NoError(t, err)
		return placed
	}

	t.Run("new to paid to fulfilled", func(t *testing.T) {
		svc, _, _, carts := newTestOrderService()
		placed := place(t, svc, carts)

		updated, err := svc.UpdateOrderStatus(ctx, placed.ID, models.OrderPaid)
		require.NoError(t, err)
		assert.Equal(t, models.OrderPaid, updated.Status)

		updated, err = svc.UpdateOrderStatus(ctx, placed.ID, models.OrderFulfilled)
		require.NoError(t, err)
		assert.Equal(t, models.OrderFulfilled, updated.Status)
	})

	t.Run("new cannot jump to fulfilled", func(t *testing.T) {
		svc, _, _, carts := newTestOrderService()
		placed := place(t, svc, carts)

		_, err := svc.UpdateOrderStatus(ctx, placed.ID, models.OrderFulfilled)
		assert.Error(t, err)
	})

	t.Run("cancelled order stays cancelled", func(t *testing.T) {
		svc, _, _, carts := newTestOrderService()
		placed := place(t, svc, carts)

		_, err := svc.UpdateOrderStatus(ctx, placed.ID, models.OrderCancelled)
		require.NoError(t, err)

		_, err = svc.UpdateOrderStatus(ctx, placed.ID, models.OrderPaid)
		assert.Error(t, err)

		got, err := svc.GetOrder(ctx, placed.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderCancelled, got.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, _, _, carts := newTestOrderService()
		placed := place(t, svc, carts)

		_, err := svc.UpdateOrderStatus(ctx, placed.ID, models.OrderStatus("SHIPPED"))
		assert.Error(t, err)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _, _, _ := newTestOrderService()
		_, err := svc.UpdateOrderStatus(ctx, "nope", models.OrderPaid)
		assert.ErrorIs(t, err, orderRepo.ErrNotFound)
	})
}
