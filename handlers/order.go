package handlers

import (
	"net/http"

	"glambook/models"
	"glambook/services/order"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// GetCartHandler returns the authenticated customer's cart.
func GetCartHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetCart(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", err.Error())
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCartHandler adds or replaces one product line in the cart.
func AddToCartHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CartItem
		if err := c.ShouldBindJSON(&item); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		cart, err := svc.AddToCart(c.Request.Context(), c.GetString("userID"), item)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to add to cart", err.Error())
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// RemoveFromCartHandler drops one product line from the cart.
func RemoveFromCartHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveFromCart(c.Request.Context(), c.GetString("userID"), c.Param("productId"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// CheckoutHandler turns the cart into an order.
func CheckoutHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		placed, err := svc.Checkout(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "checkout failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}

// ListOrdersHandler returns the authenticated customer's orders.
func ListOrdersHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListOrders(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list orders", err.Error())
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ListAllOrdersHandler returns every order. Admin only.
func ListAllOrdersHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAllOrders(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list orders", err.Error())
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler moves an order through its lifecycle. Admin only.
func UpdateOrderStatusHandler(svc order.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status models.OrderStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		updated, err := svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input.Status)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to update order", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
