package handlers

import (
	"net/http"

	"glambook/models"
	"glambook/services/catalog"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// ListProductsHandler returns the shop catalog with optional filters. Public.
func ListProductsHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ProductFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
			return
		}
		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list products", err.Error())
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler returns one product. Public.
func GetProductHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "product not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// CreateProductHandler adds a product to the catalog. Admin only.
func CreateProductHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), &input)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to create product", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateProductHandler edits a product. Admin only.
func UpdateProductHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "product not found", err.Error())
			return
		}

		var input struct {
			Name        *string  `json:"name"`
			Brand       *string  `json:"brand"`
			Category    *string  `json:"category"`
			Description *string  `json:"description"`
			Price       *float64 `json:"price"`
			Stock       *int     `json:"stock"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.Name != nil {
			current.Name = *input.Name
		}
		if input.Brand != nil {
			current.Brand = *input.Brand
		}
		if input.Category != nil {
			current.Category = *input.Category
		}
		if input.Description != nil {
			current.Description = *input.Description
		}
		if input.Price != nil {
			current.Price = *input.Price
		}
		if input.Stock != nil {
			current.Stock = *input.Stock
		}

		updated, err := svc.Update(c.Request.Context(), current)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update product", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProductHandler removes a product. Admin only.
func DeleteProductHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			utils.JSONError(c, http.StatusNotFound, "failed to delete product", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
