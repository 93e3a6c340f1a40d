package models

import "time"

// OrderStatus is the lifecycle state of a shop order.
type OrderStatus string

const (
	OrderNew       OrderStatus = "NEW"
	OrderPaid      OrderStatus = "PAID"
	OrderFulfilled OrderStatus = "FULFILLED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderFulfilled || s == OrderCancelled
}

// CanTransition reports whether the status may move from s to next.
// NEW -> {PAID, CANCELLED}; PAID -> {FULFILLED, CANCELLED}.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderNew:
		return next == OrderPaid || next == OrderCancelled
	case OrderPaid:
		return next == OrderFulfilled || next == OrderCancelled
	}
	return false
}

// CartItem is one product line in a customer's cart.
type CartItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// Cart is the ephemeral, Redis-backed shopping cart for one customer.
type Cart struct {
	CustomerID string     `json:"customerId"`
	Items      []CartItem `json:"items"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// OrderItem is a cart line snapshotted at checkout with its unit price.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is a checked-out cart. Payment capture happens outside this
// system; orders only record totals and status.
type Order struct {
	ID         string      `bson:"id" json:"id"`
	CustomerID string      `bson:"customer_id" json:"customerId"`
	Items      []OrderItem `bson:"items" json:"items"`
	Total      float64     `bson:"total" json:"total"`
	Status     OrderStatus `bson:"status" json:"status"`
	CreatedAt  time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updatedAt"`
}

// ComputeTotal sums the line totals.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
